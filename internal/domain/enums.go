package domain

// DocumentType classifies an organizational document. The set is closed;
// filtering and labeling only, no type-specific behavior hangs off it.
type DocumentType string

const (
	DocumentTypeSOP                 DocumentType = "SOP"
	DocumentTypeRiskRegister        DocumentType = "RISK_REGISTER"
	DocumentTypeRoleChart           DocumentType = "ROLE_CHART"
	DocumentTypeProcessManual       DocumentType = "PROCESS_MANUAL"
	DocumentTypeArchitectureDiagram DocumentType = "ARCHITECTURE_DIAGRAM"
	DocumentTypeIncidentLog         DocumentType = "INCIDENT_LOG"
	DocumentTypeVendorContract      DocumentType = "VENDOR_CONTRACT"
	DocumentTypePolicy              DocumentType = "POLICY"
	DocumentTypeDRBCPPlan           DocumentType = "DR_BCP_PLAN"
	DocumentTypeChatHistory         DocumentType = "CHAT_HISTORY"
	DocumentTypeExternalDocument    DocumentType = "EXTERNAL_DOCUMENT"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeSOP, DocumentTypeRiskRegister, DocumentTypeRoleChart,
		DocumentTypeProcessManual, DocumentTypeArchitectureDiagram,
		DocumentTypeIncidentLog, DocumentTypeVendorContract, DocumentTypePolicy,
		DocumentTypeDRBCPPlan, DocumentTypeChatHistory, DocumentTypeExternalDocument:
		return true
	}
	return false
}

// DocumentTypes lists every valid document type in declaration order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeSOP, DocumentTypeRiskRegister, DocumentTypeRoleChart,
		DocumentTypeProcessManual, DocumentTypeArchitectureDiagram,
		DocumentTypeIncidentLog, DocumentTypeVendorContract, DocumentTypePolicy,
		DocumentTypeDRBCPPlan, DocumentTypeChatHistory, DocumentTypeExternalDocument,
	}
}

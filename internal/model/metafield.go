package model

const (
	InvoiceNamespace = "factura"
	InvoiceAmountKey = "MONTO"
)

type Metafield struct {
	ID            int64  `json:"id,omitempty"`
	Namespace     string `json:"namespace"`
	Key           string `json:"key"`
	Value         string `json:"value"`
	PermissionSet string `json:"permission_set"`
	Description   string `json:"description,omitempty"`
	ResourceType  string `json:"resource_type,omitempty"`
	ResourceID    int64  `json:"resource_id,omitempty"`
	DateCreated   string `json:"date_created,omitempty"`
	DateModified  string `json:"date_modified,omitempty"`
}

func (m Metafield) Is(namespace, key string) bool {
	return m.Namespace == namespace && m.Key == key
}

type MetafieldInput struct {
	PermissionSet string `json:"permission_set"`
	Namespace     string `json:"namespace"`
	Key           string `json:"key"`
	Value         string `json:"value"`
}

package domain

// OrderCardHeader is the display label of a due date bucket in the storefront.
type OrderCardHeader struct {
	Main      string `json:"main"`
	Secondary string `json:"secondary"`
}

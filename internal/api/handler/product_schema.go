package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---
//
// Field names follow the frontend's Portuguese wire contract: produto (name),
// preco (price), marca (brand), cor (color), codigo (unique code), quantidade
// (quantity), condicao (condition), peso (weight), observacoes (notes).

type createProductRequest struct {
	Name      string  `json:"produto"               validate:"required"`
	Price     float64 `json:"preco"                 validate:"required,gt=0"`
	Brand     string  `json:"marca"`
	Color     string  `json:"cor"`
	Code      string  `json:"codigo"                validate:"required"`
	Quantity  int     `json:"quantidade"            validate:"gte=0"`
	Condition string  `json:"condicao"`
	Weight    float64 `json:"peso"                  validate:"gte=0"`
	Notes     string  `json:"observacoes"`
}

// updateProductRequest is the explicit allow-list of updatable fields. Absent
// fields stay untouched; the product code is immutable and not accepted here.
type updateProductRequest struct {
	Name      *string  `json:"produto"`
	Price     *float64 `json:"preco"       validate:"omitempty,gt=0"`
	Brand     *string  `json:"marca"`
	Color     *string  `json:"cor"`
	Quantity  *int     `json:"quantidade"  validate:"omitempty,gte=0"`
	Condition *string  `json:"condicao"`
	Weight    *float64 `json:"peso"        validate:"omitempty,gte=0"`
	Notes     *string  `json:"observacoes"`
}

type productResponse struct {
	Name      string  `json:"produto"`
	Price     float64 `json:"preco"`
	Brand     string  `json:"marca"`
	Color     string  `json:"cor"`
	Code      string  `json:"codigo"`
	Quantity  int     `json:"quantidade"`
	Condition string  `json:"condicao"`
	Weight    float64 `json:"peso"`
	Notes     string  `json:"observacoes"`
}

type getProductResponse struct {
	Product productResponse `json:"produto"`
}

type productMessageResponse struct {
	Message string `json:"mensagem"`
}

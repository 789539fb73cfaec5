package dto

// Account Request DTOs

// AccountListQuery binds the parameters of an account listing
type AccountListQuery struct {
	Kind   string `param:"kind" json:"kind" validate:"required,account_kind"`
	Offset int    `query:"offset" json:"offset" validate:"gte=0"`
	Limit  int    `query:"limit" json:"limit" validate:"gte=0,lte=100"`
}

// Account Response DTOs

// AccountListResponse represents a paginated list of ledger accounts of one kind
type AccountListResponse struct {
	Kind     string      `json:"kind"`
	Accounts interface{} `json:"accounts"`
	Total    int64       `json:"total"`
	Offset   int         `json:"offset"`
	Limit    int         `json:"limit"`
}

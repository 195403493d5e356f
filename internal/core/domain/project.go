package domain

import "time"

// Project groups tasks under a contract. Owner and Manager are weak user id
// references; a dangling id renders as "unspecified" at the edges.
type Project struct {
	ID                     string     `json:"id" bson:"id"`
	Name                   string     `json:"name" bson:"name"`
	Description            string     `json:"description" bson:"description"`
	ContractNumber         string     `json:"contractNumber" bson:"contract_number"`
	FiscalYear             string     `json:"fiscalYear" bson:"fiscal_year"`
	ProjectStartDate       string     `json:"projectStartDate,omitempty" bson:"project_start_date,omitempty"`
	ContractExpirationDate string     `json:"contractExpirationDate,omitempty" bson:"contract_expiration_date,omitempty"`
	Owner                  string     `json:"owner,omitempty" bson:"owner,omitempty"`
	Manager                string     `json:"manager,omitempty" bson:"manager,omitempty"`
	Status                 TaskStatus `json:"status" bson:"status"`
	CreatedAt              time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt              time.Time  `json:"updatedAt" bson:"updated_at"`
}

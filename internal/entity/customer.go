package domain

// CustomerProfile is resolved from the customer directory service. Read-only
// to the workflow.
type CustomerProfile struct {
	Email   string
	Name    string
	DNI     string
	Address string
}

package security

// In-memory client registry (replace with DB/config later)
type Client struct {
	ID      string
	Secret  string
	Perms   []string // e.g. {"orders.read","orders.write"}
	Enabled bool
}

// Storefronts authenticate the shopper upstream and mint a token here that
// carries the shopper's email.
var Clients = map[string]Client{
	"web-storefront": {ID: "web-storefront", Secret: "storefront-secret", Perms: []string{"orders.read", "orders.write"}, Enabled: true},
	"svc-billing":    {ID: "svc-billing", Secret: "billing-secret", Perms: []string{"orders.read"}, Enabled: true},
}

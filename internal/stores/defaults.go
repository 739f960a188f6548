package stores

import "github.com/anonymous-namo-1/golden-era/pkg/db/models"

const defaultHours = "10:00 AM - 8:00 PM (All days)"

// DefaultStores is the showroom list loaded by the seed tool.
func DefaultStores() []models.Store {
	return []models.Store{
		{ID: "store_001", Name: "The Golden Era - Mumbai Flagship", Address: "123 Fashion Street, Fort, Mumbai", City: "Mumbai", Pincode: "400001", Phone: "+91 22 1234 5678", Hours: defaultHours},
		{ID: "store_002", Name: "The Golden Era - Delhi", Address: "45 Connaught Place, New Delhi", City: "Delhi", Pincode: "110001", Phone: "+91 11 1234 5678", Hours: defaultHours},
		{ID: "store_003", Name: "The Golden Era - Bangalore", Address: "78 MG Road, Bangalore", City: "Bangalore", Pincode: "560001", Phone: "+91 80 1234 5678", Hours: defaultHours},
		{ID: "store_004", Name: "The Golden Era - Pune", Address: "12 FC Road, Pune", City: "Pune", Pincode: "411004", Phone: "+91 20 1234 5678", Hours: defaultHours},
		{ID: "store_005", Name: "The Golden Era - Hyderabad", Address: "89 Banjara Hills, Hyderabad", City: "Hyderabad", Pincode: "500034", Phone: "+91 40 1234 5678", Hours: defaultHours},
	}
}

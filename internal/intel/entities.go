package intel

// EntityGroup names a class of frequently-impersonated organizations and the
// terms that identify them in message text.
type EntityGroup struct {
	Name     string
	Entities []string
}

// EntityGroups returns the impersonated-entity lists in evaluation order.
func EntityGroups() []EntityGroup {
	return entityGroups
}

var entityGroups = []EntityGroup{
	{
		Name: "bankNames",
		Entities: []string{
			"sbi", "hdfc", "icici", "axis", "kotak", "pnb", "state bank of india", "bank of baroda", "bank of india", "idbi",
		},
	},
	{
		Name: "paymentServices",
		Entities: []string{
			"paytm", "phonepe", "gpay", "google pay", "bhim", "upi", "cred", "razorpay", "fastag", "paypal", "venmo",
		},
	},
	{
		Name: "government",
		Entities: []string{
			"uidai", "aadhaar", "pan card", "incometax", "passport", "mygov", "digilocker", "gst",
		},
	},
	{
		Name: "socialMedia",
		Entities: []string{
			"facebook", "instagram", "whatsapp", "twitter", "linkedin", "snapchat", "tiktok",
		},
	},
}

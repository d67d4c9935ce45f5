// Package intel holds the static threat intelligence tables the scoring
// engine runs against: the weighted keyword lexicon, the known-spam corpus,
// the domain registry, and the impersonated-entity lists. The tables are
// compiled in so the scorers stay pure and dependency-free; refreshing them
// is a rebuild, not a runtime concern.
package intel

// Category is a weighted group of scam keywords. A category triggers at most
// once per message regardless of how many of its keywords match.
type Category struct {
	Name     string
	Weight   int
	Keywords []string
}

// LanguageLexicon groups categories under a language namespace. Categories
// with the same name in different namespaces accumulate independently.
type LanguageLexicon struct {
	Language   string
	Categories []Category
}

// Lexicon returns the full keyword lexicon in evaluation order. The slice is
// shared; callers must not mutate it.
func Lexicon() []LanguageLexicon {
	return lexicon
}

var lexicon = []LanguageLexicon{
	{
		Language: "english",
		Categories: []Category{
			{
				Name:   "phishing",
				Weight: 30,
				Keywords: []string{
					"verify your account", "account suspended", "login attempt", "unusual activity", "confirm your password", "security alert", "unauthorized login", "account will be terminated", "confirm your credentials",
					"validate your information", "unauthorized transaction", "your sign-in", "security code", "account has been compromised", "your account is at risk", "user id is", "password is", "update your payment method",
					"billing information", "account locked", "action required", "reset your password", "click to verify", "verify details now", "suspicious login detected", "we noticed login from", "confirm your identity",
					"verify otp", "one time password", "verify now to avoid suspension", "confirm billing address", "confirm card details", "confirm bank details", "verify transaction", "please confirm your account", "unauthorized access",
					"security verification", "immediate verification required", "temporary suspension", "reactivate account", "account reactivation", "update security settings", "login to continue", "we have placed a temporary hold",
				},
			},
			{
				Name:   "financialScam",
				Weight: 35,
				Keywords: []string{
					"kyc update", "bank account blocked", "credit card blocked", "debit card disabled", "pending payment", "upi pin", "electricity bill due", "fastag recharge",
					"customs duty", "demat account", "insurance policy lapse", "sim card will be blocked", "pan card update", "bonus prize", "cash award",
					"prize reward", "your mobile will be charged", "unredeemed bonus points", "cash-balance is", "loan for any purpose", "previously refused",
					"bonus caller prize", "get your free", "crypto", "investment opportunity", "guaranteed returns", "bitcoin", "get rich quick", "bank alert", "payment failure",
					"refund processed", "refund pending", "tax refund", "gst refund", "income tax refund", "immediate payment required", "transfer initiated",
					"authorise payment", "verify beneficiary", "failed transaction", "reverse transaction", "chargeback", "unauthorised charge",
				},
			},
			{
				Name:   "lotteryScam",
				Weight: 25,
				Keywords: []string{
					"you have won", "lottery winner", "claim your prize", "congratulations you won", "you are the lucky winner", "claim your reward", "kbc lottery", "you have been selected",
					"prize guaranteed", "guaranteed £", "won a 1 week free membership", "won a guaranteed", "prize jackpot", "to claim call", "claim code", "valued network customer",
					"shopping spree", "free entry", "wkly comp to win", "selected to receivea", "finalist", "grand prize", "claim your gift card", "cash prize",
					"free vacation", "you are winner of", "exclusive prize", "limited winners", "winner announcement",
				},
			},
			{
				Name:   "deliveryScam",
				Weight: 25,
				Keywords: []string{
					"delivery failed", "package on hold", "incorrect address", "customs clearance fee", "your parcel is arriving", "track your shipment", "your parcel is stuck", "redelivery fee",
					"customer service announcement", "delivery waiting for you", "tried to make a delivery", "fedex", "dhl", "usps", "courier failed", "parcel on hold", "pay shipping fee",
					"delivery charge payable", "verify shipping address", "schedule redelivery", "claim your delivery", "shipment delayed due to customs", "click to track parcel",
				},
			},
			{
				Name:   "urgency",
				Weight: 15,
				Keywords: []string{
					"urgent action required", "act now", "limited time offer", "don't miss out", "expires soon", "final notice", "warning", "immediately", "valid 12 hours only",
					"final attempt to contact", "call now", "last chance to claim", "urgent!", "offer ends today", "immediate response needed", "respond within 24 hours",
					"respond immediately", "within 48 hours", "deadline", "final reminder", "pay now or account closed",
				},
			},
			{
				Name:   "jobScam",
				Weight: 25,
				Keywords: []string{
					"work from home", "guaranteed job", "high salary", "no experience needed", "interview fee", "job offer", "weekly pay", "hiring immediately", "online recruitment",
					"pay registration fee", "transfer fee", "process your paperwork for a fee", "training fee", "get remote job", "earn from home", "apply now for job",
					"secret shopper", "data entry job", "advance fee job", "no interview required",
				},
			},
			{
				Name:   "techSupportScam",
				Weight: 35,
				Keywords: []string{
					"microsoft support", "your computer has a virus", "malware detected", "technician", "remote access", "security breach on your pc", "call immediately for support",
					"windows support", "call microsoft now", "support technician", "urgent system update", "install this update", "allow remote access",
					"we detected unusual activity on your device", "scan your pc now", "contact support to restore", "contact technician to avoid data loss",
				},
			},
			{
				Name:   "fakeInvoice",
				Weight: 30,
				Keywords: []string{
					"your invoice is attached", "invoice enclosed", "payment overdue", "outstanding invoice", "click to view invoice", "payment confirmation needed",
					"please pay overdue invoice", "invoice due", "download invoice", "view attached invoice", "gst invoice attached", "company invoice enclosed",
					"bill attached", "invoice payment required", "account payable",
				},
			},
			{
				Name:   "blackmailExtortion",
				Weight: 40,
				Keywords: []string{
					"i have your video",
					"i know your secret", "compromised your device", "pay bitcoin", "your secret will be revealed", "i have recorded you", "send money or we will expose",
					"your photos will be shared", "pay ransom", "private link will be published", "24 hours to pay", "we have compromising material", "we have access to your camera",
					"blackmail", "extortion", "leak your data",
				},
			},
			{
				Name:   "subscriptionScam",
				Weight: 20,
				Keywords: []string{
					"free ringtone", "your ringtone is waiting", "subscription to", "charged £", "unsubscribe", "free tones", "polyphonic tones", "weekly competition", "text stop to",
					"your mobile content order", "free music player", "ringtone club", "weekly new tone", "hardcore services text", "hardcore services", "subscription renewal failed",
					"apple subscription canceled", "netflix payment failed", "your subscription is suspended", "confirm subscription payment",
				},
			},
			{
				Name:   "datingScam",
				Weight: 20,
				Keywords: []string{
					"get laid tonight", "real dogging locations", "secret admirer", "sexy singles", "wanna chat", "horny", "live local", "dating service", "fall in love",
					"chat n date now", "text me live", "sexy chat", "meet exciting adult singles", "private line", "meet singles near you",
					"hot chat", "escort service", "online dating", "romance scam",
				},
			},
			{
				Name:   "genericGreeting",
				Weight: 10,
				Keywords: []string{
					"dear customer", "dear user", "dear sir/madam", "valued customer", "hello valued member", "hello dear", "greeting from", "attention customer",
				},
			},
			{
				Name:   "misspellings",
				Weight: 10,
				Keywords: []string{
					"cusomer", "ruppes", "acount", "balence", "congratulation", "imediately", "verfy", "unusualy", "debted", "offical", "rcv", "txt", "ur",
					"u r", "wkly", "congratultions", "sucessfully", "seccess", "recieve", "verfication", "klik", "clickk", "otp is",
				},
			},
			{
				Name:   "malware",
				Weight: 35,
				Keywords: []string{
					"open attachment", "download attached file", "apk download", "malicious link", "infected attachment", "scan required", "ransomware", "encrypted your files",
					"click to decrypt", "payment to decrypt", "decrypt key", "virus detected", "trojan detected", "install this apk", "run this exe",
				},
			},
			{
				Name:   "socialEngineering",
				Weight: 20,
				Keywords: []string{
					"call our helpdesk", "support agent", "hr verification", "employee verification", "confirm your account details",
					"confirm your PAN", "confirm aadhaar", "sms verification", "share otp", "share pin", "share password",
				},
			},
			{
				Name:   "cryptoFraud",
				Weight: 40,
				Keywords: []string{
					"send bitcoin", "pay in bitcoin", "crypto giveaway", "double your bitcoin", "crypto investment", "buy now coin", "airdrop claim", "wallet transfer", "private key", "send us crypto",
				},
			},
			{
				Name:   "marketplaceScam",
				Weight: 30,
				Keywords: []string{
					"olx buyer", "quikr buyer", "send advance", "pay to reserve", "need payment first", "escrow service", "fake buyer", "payment held in escrow", "seller verification fee",
				},
			},
			{
				Name:   "govFraud",
				Weight: 35,
				Keywords: []string{
					"income tax notice", "penalty due", "aadhar suspended", "uidai", "police verification", "court notice", "tax due", "pay gst refund", "court summons", "fancy refund",
				},
			},
		},
	},
	{
		Language: "hinglish",
		Categories: []Category{
			{
				Name:   "financialScam",
				Weight: 35,
				Keywords: []string{
					"kyc update karein", "bank account block ho gaya hai", "credit card block", "bijli bill", "pending payment", "upi pin chahiye", "demat account freeze",
					"policy lapse ho jayegi", "sim card block ho jayega", "pan card update karein", "aapka account suspend hai", "aapka account block ho jayega",
					"turant kyc update karein", "aapka bank account at risk", "paise wapas milenge", "tax refund aapke naam", "gst refund ke liye click karein",
				},
			},
			{
				Name:   "lotteryScam",
				Weight: 25,
				Keywords: []string{
					"aap jeet gaye hain", "lottery winner", "apna prize claim karein", "badhai ho aap jeet gaye", "kbc lottery winner", "aapko inaam milaa hai", "jeet ka notification",
				},
			},
			{
				Name:   "urgency",
				Weight: 15,
				Keywords: []string{
					"turant action lein", "act now", "limited time offer", "mauka na chukein", "last warning", "abhi verify karein", "24 ghante ke andar",
				},
			},
			{
				Name:   "genericGreeting",
				Weight: 10,
				Keywords: []string{
					"dear customer", "dear user", "is link par click karein", "priy grahak", "namaste grahak",
				},
			},
			{
				Name:   "techSupport",
				Weight: 35,
				Keywords: []string{
					"microsoft support ko call karein", "aapke pc mein virus hai", "remote access de", "hamara technician contact karega", "turant support available hai",
				},
			},
			{
				Name:   "blackmail",
				Weight: 40,
				Keywords: []string{
					"tumhara video hai", "garbar ho jayegi agar paise nahi diye", "video leak kar dunga", "bitcoin bhejo", "message delete karoge to kuch nahi hoga",
				},
			},
		},
	},
}

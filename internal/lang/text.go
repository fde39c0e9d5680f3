package lang

// Loading is shown while a fetch is in flight.
func Loading(l Language) string {
	switch l {
	case English:
		return "Fetching fresh news..."
	case Hindi:
		return "ताज़ा खबरें आ रही हैं..."
	default:
		return "তাজা খবর আসছে..."
	}
}

// Empty is shown when a fetch produced no stories, whatever the reason.
func Empty(l Language) string {
	switch l {
	case English:
		return "No news available right now. Press r to refresh."
	case Hindi:
		return "अभी कोई खबर उपलब्ध नहीं है। रीफ्रेश करने के लिए r दबाएँ।"
	default:
		return "এই মুহূর্তে কোনো খবর নেই। রিফ্রেশ করতে r চাপুন।"
	}
}

// Welcome greets the reader, falling back to a generic name.
func Welcome(l Language, name string) string {
	switch l {
	case English:
		if name == "" {
			name = "Reader"
		}
		return "Welcome, " + name
	case Hindi:
		if name == "" {
			name = "पाठक"
		}
		return "स्वागत है, " + name
	default:
		if name == "" {
			name = "পাঠক"
		}
		return "স্বাগতম, " + name
	}
}

// TrendingTitle heads the trending sidebar.
func TrendingTitle(l Language) string {
	switch l {
	case Hindi:
		return "ट्रेंडिंग"
	case Bengali:
		return "ট্রেন্ডিং"
	default:
		return "Trending Now"
	}
}

// TrendingFallback is used when the trending feed cannot be read.
func TrendingFallback(l Language) []string {
	switch l {
	case Bengali:
		return []string{"স্পেসএক্স এর নতুন রেকর্ড", "এআই প্রযুক্তিতে নতুন মোড়", "গুগল এর বড় ঘোষণা"}
	case Hindi:
		return []string{"स्पेसएक्स का नया रिकॉर्ड", "एआई तकनीक में नया मोड़", "गूगल की बड़ी घोषणा"}
	default:
		return []string{"SpaceX New Record", "AI Tech New Turn", "Google Big Announcement"}
	}
}

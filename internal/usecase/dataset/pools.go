package dataset

// Fixed pools the generator draws from. Label sets are exported so the
// handler layer can echo them back to pickers; template/keyword pools stay
// package-private.

// KnownDomains lists every hackathon track the generator understands
var KnownDomains = []string{
	"Web Development", "Mobile App Development", "AI/ML", "Blockchain", "IoT",
	"Cybersecurity", "Game Development", "Data Science",
}

// DefaultDomains is the selection preloaded into the domain picker
var DefaultDomains = []string{
	"Web Development", "Mobile App Development", "AI/ML", "Blockchain", "IoT",
}

// KnownRegions lists every region label the generator understands
var KnownRegions = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Delhi", "Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan",
	"Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

// DefaultRegions is the selection preloaded into the region picker
var DefaultRegions = []string{
	"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "Uttar Pradesh",
	"Gujarat", "Telangana", "West Bengal", "Rajasthan", "Punjab",
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth",
	"David", "Susan", "Richard", "Jessica", "Joseph", "Sarah", "Thomas", "Karen", "Charles", "Nancy",
	"Christopher", "Lisa", "Daniel", "Margaret", "Matthew", "Betty", "Anthony", "Sandra", "Donald", "Ashley",
	"Mark", "Dorothy", "Paul", "Kimberly", "Steven", "Emily", "Andrew", "Donna", "Kenneth", "Michelle",
	"Joshua", "Carol", "Kevin", "Amanda", "Brian", "Melissa", "George", "Deborah", "Edward", "Stephanie",
	"Ronald", "Rebecca", "Timothy", "Laura", "Jason", "Helen", "Jeffrey", "Sharon", "Ryan", "Cynthia",
	"Rajesh", "Priya", "Sanjay", "Neha", "Vikram", "Ananya", "Arun", "Kavita", "Amit", "Deepika",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Patel", "Sharma", "Singh", "Kumar", "Shah", "Gupta", "Verma", "Joshi", "Malhotra", "Chopra",
}

var colleges = []string{
	"IIT Bombay", "IIT Delhi", "IIT Madras", "IIT Kanpur", "IIT Kharagpur",
	"BITS Pilani", "BITS Hyderabad", "BITS Goa", "NIT Trichy", "NIT Warangal",
	"NIT Surathkal", "Delhi Technological University", "VIT Vellore", "IIIT Hyderabad",
	"Manipal Institute of Technology", "SRM University", "Amrita University", "Thapar University",
	"College of Engineering Pune", "PES University", "SSN College of Engineering",
	"RV College of Engineering", "BMS College of Engineering", "MS Ramaiah Institute of Technology",
	"Jadavpur University", "Anna University", "KIIT University", "LNM Institute of Technology",
	"Chandigarh University", "Amity University", "Lovely Professional University", "Shiv Nadar University",
}

// Feedback templates per sentiment; %s is the domain slot.
var positiveFeedback = []string{
	"I loved the %s hackathon! The mentors were very helpful.",
	"Great experience in the %s event. Would definitely participate again!",
	"The %s challenge was tough but rewarding. Learned a lot!",
	"Amazing organization and support at the %s track!",
	"Very insightful %s hackathon. Made great connections!",
	"Thoroughly enjoyed working on %s projects. The workshops were excellent!",
	"Well-structured %s challenges. Got valuable industry exposure.",
	"The %s event was eye-opening! Can't wait for the next one.",
	"Gained practical knowledge about %s. Very beneficial for my career.",
	"Excellent facilities and resources for the %s hackathon!",
}

var neutralFeedback = []string{
	"The %s hackathon was okay. Some aspects could be improved.",
	"Average experience at the %s event. Nothing special.",
	"The %s track had some good and bad moments.",
	"Decent organization of the %s hackathon. Expected more mentorship.",
	"The %s challenge was moderately difficult. Internet connection was spotty.",
	"Food could be better at the %s event, but overall it was fine.",
	"The %s workshops were informative but too short.",
	"Mixed feelings about the %s track. Some judges seemed biased.",
	"The %s hackathon schedule was too tight. Barely had time to complete.",
	"Moderate learning experience in %s. Not sure if I'll participate again.",
}

var negativeFeedback = []string{
	"The %s hackathon was disappointing. Poor organization.",
	"Not enough guidance in the %s track. Felt lost most of the time.",
	"Too many technical issues during the %s challenge.",
	"The %s event was overcrowded and noisy. Couldn't focus.",
	"Unclear instructions for the %s hackathon. Very frustrating.",
	"The %s mentors were rarely available when needed.",
	"The %s track was too advanced for beginners. More tutorials needed.",
	"Poor facilities at the %s event. No proper rest areas.",
	"The %s hackathon was exhausting with minimal benefits.",
	"Didn't learn much from the %s workshops. Too basic content.",
}

// domainKeywords maps a domain to its jargon pool; domains without an entry
// get no keyword suffix on their feedback.
var domainKeywords = map[string][]string{
	"Web Development":        {"HTML", "CSS", "JavaScript", "React", "frontend", "backend", "API", "responsive"},
	"Mobile App Development": {"Android", "iOS", "Flutter", "React Native", "UI/UX", "mobile", "app"},
	"AI/ML":                  {"machine learning", "neural networks", "algorithms", "data", "models", "tensorflow", "pytorch"},
	"Blockchain":             {"crypto", "smart contracts", "decentralized", "ethereum", "tokens", "web3", "ledger"},
	"IoT":                    {"sensors", "devices", "connectivity", "embedded", "Arduino", "Raspberry Pi", "automation"},
	"Cybersecurity":          {"security", "encryption", "vulnerability", "firewall", "protection", "hacking", "privacy"},
	"Game Development":       {"Unity", "Unreal", "gameplay", "graphics", "mechanics", "levels", "characters"},
	"Data Science":           {"visualization", "analytics", "big data", "pandas", "prediction", "statistics", "insights"},
}

func knownLabel(pool []string, label string) bool {
	for _, l := range pool {
		if l == label {
			return true
		}
	}
	return false
}

package services

import (
	"time"

	"catcare/internal/models/response_models"
)

// situation is a keyword-triggered entry in the responder's rule table.
// Table order is matching precedence: the first situation with any keyword
// present in the lower-cased input wins.
type situation struct {
	name      string
	keywords  []string
	responses []response_models.AIResponse
}

var thinkingSteps = []response_models.ThinkingStep{
	{Message: "🧠 Analyzing symptoms...", Duration: 1800 * time.Millisecond},
	{Message: "🔍 Searching database...", Duration: 1500 * time.Millisecond},
	{Message: "📋 Preparing recommendations...", Duration: 1200 * time.Millisecond},
	{Message: "🎯 Finalizing assessment...", Duration: 1000 * time.Millisecond},
}

var doctorSearchSteps = []response_models.ThinkingStep{
	{Message: "🔍 Symptoms require specialist consultation...", Duration: 1500 * time.Millisecond},
	{Message: "👨‍⚕️ Searching available doctors...", Duration: 1800 * time.Millisecond},
	{Message: "📍 Matching specialists in your area...", Duration: 1600 * time.Millisecond},
	{Message: "⭐ Found top-rated specialist...", Duration: 1200 * time.Millisecond},
}

var availableDoctors = []response_models.DoctorInfo{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Feline Internal Medicine", Location: "New York, USA", Rating: 4.9},
	{ID: 2, Name: "Dr. Hiroshi Tanaka", Specialty: "Veterinary Surgery", Location: "Tokyo, Japan", Rating: 4.8},
	{ID: 3, Name: "Dr. Emma Wilson", Specialty: "Emergency Pet Care", Location: "London, UK", Rating: 4.7},
	{ID: 4, Name: "Dr. Marco Silva", Specialty: "Cat Behavior", Location: "São Paulo, Brazil", Rating: 4.9},
	{ID: 5, Name: "Dr. Anna Mueller", Specialty: "Feline Cardiology", Location: "Berlin, Germany", Rating: 4.8},
}

var situations = []situation{
	{
		name:     "not eating",
		keywords: []string{"not eating", "won't eat", "loss appetite", "appetite loss", "refusing food", "no appetite"},
		responses: []response_models.AIResponse{
			{
				Text:       "Based on my analysis of 47,000+ feline cases, appetite loss lasting over 24 hours requires immediate attention. I've identified 3 potential causes: dental pain (42% probability), gastrointestinal issues (31%), or stress-related factors (27%). I'm detecting this as a medium-priority case requiring professional evaluation within 6 hours.",
				Confidence: 87,
				Urgency:    response_models.UrgencyMedium,
				Recommendations: []string{
					"Schedule vet appointment within 6 hours",
					"Monitor for additional symptoms",
					"Ensure fresh water access",
					"Avoid forcing food consumption",
				},
			},
			{
				Text:       "Cross-referencing your cat's symptoms with our veterinary AI database... This pattern appears in 1,247 recent cases. My assessment indicates potential underlying conditions that warrant professional examination. I'm connecting you with Dr. Sarah Johnson, our feline nutrition specialist, who has 94% success rate with appetite disorders.",
				Confidence: 91,
				Urgency:    response_models.UrgencyMedium,
				Recommendations: []string{
					"Immediate vet consultation recommended",
					"Document eating patterns for 24h",
					"Check for dental sensitivity",
					"Consider stress factors in environment",
				},
			},
		},
	},
	{
		name:     "vomiting episodes",
		keywords: []string{"vomiting", "throwing up", "vomit", "sick", "puking", "nausea"},
		responses: []response_models.AIResponse{
			{
				Text:       "Emergency protocol activated. My AI analysis shows vomiting patterns consistent with 2,890 cases in our database. This presents as a high-priority situation requiring immediate evaluation. I'm calculating a 78% probability of gastrointestinal distress and 22% chance of toxin exposure. Emergency services are recommended within 2 hours.",
				Confidence: 93,
				Urgency:    response_models.UrgencyHigh,
				Recommendations: []string{
					"Seek emergency veterinary care immediately",
					"Remove food and water access temporarily",
					"Monitor for dehydration signs",
					"Document vomiting frequency and content",
				},
			},
			{
				Text:       "Processing digestive emergency data... My analysis indicates this symptom cluster appears in 15.3% of urgent cases. I'm detecting patterns suggesting immediate veterinary intervention is required. Based on 12,000+ similar cases, this condition has 89% positive outcomes with prompt treatment.",
				Confidence: 89,
				Urgency:    response_models.UrgencyEmergency,
				Recommendations: []string{
					"Emergency vet visit required NOW",
					"Bring vomit sample if possible",
					"List recent dietary changes",
					"Prepare medical history summary",
				},
			},
		},
	},
	{
		name:     "breathing difficulty",
		keywords: []string{"breathing", "breath", "wheezing", "panting", "gasping", "respiratory"},
		responses: []response_models.AIResponse{
			{
				Text:       "CRITICAL ALERT: My AI diagnostic system has flagged respiratory distress as an emergency condition. Cross-referencing with 8,400+ respiratory cases shows 96% require immediate intervention. I'm activating emergency protocols and locating the nearest 24/7 veterinary facility. This is classified as life-threatening priority.",
				Confidence: 96,
				Urgency:    response_models.UrgencyEmergency,
				Recommendations: []string{
					"EMERGENCY: Get to vet hospital NOW",
					"Keep cat calm during transport",
					"Ensure good ventilation in carrier",
					"Call ahead to prepare emergency team",
				},
			},
			{
				Text:       "Emergency respiratory assessment completed. My AI analysis shows this symptom pattern in 0.8% of cases - all requiring immediate care. I'm connecting you with emergency services and preparing Dr. Martinez (cardiopulmonary specialist) for immediate consultation. Time is critical for optimal outcomes.",
				Confidence: 98,
				Urgency:    response_models.UrgencyEmergency,
				Recommendations: []string{
					"URGENT: Emergency vet immediately",
					"Monitor breathing rate continuously",
					"Avoid stress or exertion",
					"Transport in well-ventilated carrier",
				},
			},
		},
	},
	{
		name:     "behavioral changes",
		keywords: []string{"hiding", "aggressive", "lethargic", "withdrawn", "behavior", "acting strange"},
		responses: []response_models.AIResponse{
			{
				Text:       "My behavioral analysis engine has processed your cat's symptoms against 23,000+ behavioral health cases. I'm detecting a 73% correlation with underlying medical conditions. Behavioral changes often indicate pain or discomfort that cats instinctively hide. This warrants professional evaluation within 24-48 hours.",
				Confidence: 81,
				Urgency:    response_models.UrgencyMedium,
				Recommendations: []string{
					"Schedule veterinary behavioral assessment",
					"Monitor eating and litter habits",
					"Document specific behavioral changes",
					"Consider environmental stress factors",
				},
			},
			{
				Text:       "Advanced behavioral pattern recognition activated... I'm analyzing your cat's symptoms through our feline psychology database. This behavior profile appears in 4,200+ cases, with 67% indicating underlying health issues. My recommendation engine suggests Dr. Chen Wei, our animal behaviorist, for comprehensive evaluation.",
				Confidence: 84,
				Urgency:    response_models.UrgencyLow,
				Recommendations: []string{
					"Behavioral assessment recommended",
					"Track daily activity patterns",
					"Review recent environmental changes",
					"Consider stress reduction strategies",
				},
			},
		},
	},
}

// defaultResponses answer inputs no situation matches. The escalation entry
// is kept separate so policy handling stays explicit.
var defaultResponses = []response_models.AIResponse{
	{
		Text:       "I'm analyzing your inquiry through our comprehensive veterinary AI system... Based on preliminary assessment, I recommend consulting with one of our 2,400+ certified veterinarians for personalized guidance. Would you like me to connect you with a specialist in your area?",
		Confidence: 75,
		Urgency:    response_models.UrgencyLow,
		Recommendations: []string{
			"Consult with local veterinarian",
			"Monitor symptoms closely",
			"Document any changes",
			"Ensure regular health checkups",
		},
	},
	{
		Text:       "Processing your cat health inquiry... My AI diagnostic system is cross-referencing your input with our extensive medical database. For the most accurate assessment, I recommend scheduling a consultation with one of our verified veterinary professionals. Shall I locate specialists in your area?",
		Confidence: 78,
		Urgency:    response_models.UrgencyLow,
		Recommendations: []string{
			"Professional veterinary consultation",
			"Regular health monitoring",
			"Maintain vaccination schedule",
			"Consider preventive care options",
		},
	},
}

var doctorEscalationResponse = response_models.AIResponse{
	Text:           "My diagnostic algorithms indicate this symptom pattern requires specialized veterinary evaluation that goes beyond my current analysis capabilities. I'm unable to provide a confident assessment without physical examination. Let me connect you with a qualified veterinarian who can provide the expert care your cat needs.",
	Confidence:     60,
	Urgency:        response_models.UrgencyMedium,
	RequiresDoctor: true,
	Recommendations: []string{
		"Immediate veterinary consultation required",
		"Prepare list of symptoms and timeline",
		"Bring medical history if available",
		"Schedule appointment within 24 hours",
	},
}

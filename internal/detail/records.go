package detail

// Key identifies one entry of the detail table.
type Key string

const (
	KeyLevel2          Key = "l2"
	KeyLevel3          Key = "l3"
	KeyACTAwareness    Key = "act-awareness"
	KeyACTSecurity     Key = "act-security"
	KeyCPDLone         Key = "cpd-lone"
	KeyCPDEthics       Key = "cpd-ethics"
	KeyCPDConflict     Key = "cpd-conflict"
	KeyCPDSafeguarding Key = "cpd-safeguarding"
	KeyCPDReporting    Key = "cpd-reporting"
)

// keys is the closed set of detail keys in display order.
var keys = []Key{
	KeyLevel2,
	KeyLevel3,
	KeyACTAwareness,
	KeyACTSecurity,
	KeyCPDLone,
	KeyCPDEthics,
	KeyCPDConflict,
	KeyCPDSafeguarding,
	KeyCPDReporting,
}

const (
	ctaHref        = "#contact"
	requestAccess  = "Request access"
	bulletsPerItem = 4
)

var records = map[Key]Record{
	KeyLevel2: {
		Title: "Level 2 First Aid",
		Bullets: []string{
			"Life-saving actions and prioritising response",
			"Managing common workplace incidents",
			"Practical scenarios to build confidence",
			"Clear notes and escalation basics",
		},
		CTALabel: "Enquire about Level 2",
		CTAHref:  ctaHref,
	},
	KeyLevel3: {
		Title: "Level 3 First Aid",
		Bullets: []string{
			"Deeper incident response and decision-making",
			"Scenario-led practical elements",
			"Leadership and communication under pressure",
			"Reviewing risk and prevention basics",
		},
		CTALabel: "Enquire about Level 3",
		CTAHref:  ctaHref,
	},
	KeyACTAwareness: {
		Title: "ACT Awareness",
		Bullets: []string{
			"Situational awareness fundamentals",
			"Recognise suspicious behaviour and indicators",
			"Respond and report pathways in a clear structure",
			"Personal safety and communication",
		},
		CTALabel: "Enquire about ACT Awareness",
		CTAHref:  ctaHref,
	},
	KeyACTSecurity: {
		Title: "ACT Security",
		Bullets: []string{
			"Security-role responsibilities and procedures",
			"Threat response principles and coordination",
			"Communications, escalation and post-incident actions",
			"Scenario thinking and professional judgement",
		},
		CTALabel: "Enquire about ACT Security",
		CTAHref:  ctaHref,
	},
	KeyCPDLone: {
		Title: "CPD: Lone Working",
		Bullets: []string{
			"Risk awareness and common hazards",
			"Pre-planning and check-in routines",
			"Decision-making and escalation",
			"Personal safety and reporting",
		},
		CTALabel: requestAccess,
		CTAHref:  ctaHref,
	},
	KeyCPDEthics: {
		Title: "CPD: Security Operative Ethics at Workplace",
		Bullets: []string{
			"Professional boundaries and conduct",
			"Integrity, accountability and decision-making",
			"Confidentiality and respectful communication",
			"Practical examples and reflection prompts",
		},
		CTALabel: requestAccess,
		CTAHref:  ctaHref,
	},
	KeyCPDConflict: {
		Title: "CPD: Conflict Management Refresher",
		Bullets: []string{
			"Communication skills refresh",
			"De-escalation techniques",
			"Professional presence and safety",
			"What to do when things escalate",
		},
		CTALabel: requestAccess,
		CTAHref:  ctaHref,
	},
	KeyCPDSafeguarding: {
		Title: "CPD: Safeguarding & Duty of Care",
		Bullets: []string{
			"Recognising safeguarding concerns",
			"Appropriate actions and reporting",
			"Professional boundaries and care",
			"Practical workplace examples",
		},
		CTALabel: requestAccess,
		CTAHref:  ctaHref,
	},
	KeyCPDReporting: {
		Title: "CPD: Incident Reporting & Evidence Handling",
		Bullets: []string{
			"Writing clear, factual notes",
			"Evidence handling basics and continuity thinking",
			"Professional reporting structure",
			"Common pitfalls and how to avoid them",
		},
		CTALabel: requestAccess,
		CTAHref:  ctaHref,
	},
}

func init() {
	if err := checkTable(keys, records); err != nil {
		panic(err)
	}
}

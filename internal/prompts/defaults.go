// File: internal/prompts/defaults.go
package prompts

import "github.com/traza-ai/trainhub/internal/domain"

// DefaultDomainName is the sentinel meaning "use the shipped built-in
// copy". A generated dataset with the same display name is indistinguishable
// from the shipped one by this check alone.
const DefaultDomainName = "Freight Forwarding"

// DefaultDomain is the shipped built-in dataset. The built-in system
// prompts are generated from it at startup; the two can therefore never
// drift apart.
var DefaultDomain = domain.DomainTheoryData{
	DomainName: DefaultDomainName,
	Overview: domain.Overview{
		Title: "What is Freight Forwarding?",
		Paragraphs: []string{
			"A freight forwarder is an intermediary that organizes the shipment of goods from point A to point B on behalf of shippers. They don't typically own transportation assets — instead, they negotiate with carriers (shipping lines, airlines, trucking companies) to move goods efficiently.",
			"Think of them as the \"travel agents of cargo.\" A shipper says \"I need 500 boxes of electronics moved from Shenzhen to Rotterdam,\" and the forwarder handles everything: booking, documentation, customs, insurance, and tracking.",
		},
	},
	Vocabulary: []domain.VocabularyItem{
		{
			Term:       "Freight Forwarder",
			Definition: "A company that organizes shipments for individuals or corporations to get goods from manufacturer to market. They don't own transport vehicles — they act as intermediaries.",
			Example:    "Think of them as travel agents for cargo.",
		},
		{
			Term:       "Bill of Lading (B/L)",
			Definition: "The most important document in shipping. It's simultaneously a receipt, a contract of carriage, and a document of title.",
			Example:    "Master B/L (MBL) is carrier-forwarder. House B/L (HBL) is forwarder-shipper.",
		},
		{
			Term:       "Incoterms",
			Definition: "International Commercial Terms — 11 standardized rules defining who pays for what in a shipment.",
			Example:    "FOB (Free On Board): seller pays until goods are on the vessel. CIF (Cost, Insurance, Freight): seller pays freight + insurance.",
		},
		{
			Term:       "FCL / LCL",
			Definition: "Full Container Load vs Less than Container Load. FCL = you rent the whole container. LCL = you share a container with other shippers.",
			Example:    "FCL is like renting a whole truck. LCL is like using a shared moving service.",
		},
		{
			Term:       "Demurrage",
			Definition: "Penalty charged when a container stays at the port/terminal beyond the free time allowed.",
			Example:    "If you have 5 free days and pick up on day 8, you pay demurrage for 3 days. Can be $100-300/day per container.",
		},
		{
			Term:       "Detention",
			Definition: "Penalty charged when a container is kept outside the port beyond allowed time.",
			Example:    "You picked up the container but took too long to unload and return it. Similar rates to demurrage.",
		},
		{
			Term:       "NVOCC",
			Definition: "Non-Vessel Operating Common Carrier — a freight forwarder that issues their own B/L but doesn't own ships.",
			Example:    "They buy space from carriers in bulk and resell it, like a wholesaler.",
		},
		{
			Term:       "Customs Broker",
			Definition: "Licensed professional who handles customs clearance — paperwork, tariff classification, duties/taxes.",
			Example:    "They ensure your shipment complies with import/export regulations.",
		},
		{
			Term:       "DUA (Documento Unico Administrativo)",
			Definition: "Single Administrative Document — the customs declaration form used in the EU for imports/exports.",
			Example:    "Required for any goods entering or leaving the EU customs territory.",
		},
		{
			Term:       "Air Waybill (AWB)",
			Definition: "The air freight equivalent of a B/L. Non-negotiable (unlike a B/L). Issued by the airline or agent.",
			Example:    "MAWB = airline-forwarder. HAWB = forwarder-shipper.",
		},
		{
			Term:       "EXW / DDP",
			Definition: "EXW (Ex Works): buyer bears ALL transport costs and risk from seller's premises. DDP (Delivered Duty Paid): seller bears ALL costs including import duties.",
			Example:    "EXW = minimum seller responsibility. DDP = maximum seller responsibility.",
		},
		{
			Term:       "POD (Proof of Delivery)",
			Definition: "Document confirming goods were delivered to the consignee. Triggers final invoicing.",
			Example:    "Usually a signed delivery receipt with date, time, and recipient name.",
		},
	},
	Lifecycle: []domain.LifecycleStep{
		{Step: 1, Name: "Booking", Description: "Client requests a shipment. Forwarder gets quotes from carriers, books space."},
		{Step: 2, Name: "Pickup / Collection", Description: "Goods collected from shipper's warehouse. Packing list verified."},
		{Step: 3, Name: "Export Customs", Description: "Documents submitted to customs at origin. DUA filed. Goods cleared for export."},
		{Step: 4, Name: "Port / Airport Handling", Description: "Container loaded onto vessel/aircraft. B/L or AWB issued."},
		{Step: 5, Name: "Transit", Description: "Goods in transit. Tracking updates. Transit time: 2-6 weeks sea, 2-5 days air."},
		{Step: 6, Name: "Arrival / Discharge", Description: "Vessel arrives at destination port. Container unloaded."},
		{Step: 7, Name: "Import Customs", Description: "Documents submitted at destination. Duties and taxes calculated and paid. Goods released."},
		{Step: 8, Name: "Last-Mile Delivery", Description: "Container transported from port to consignee's warehouse. Unloaded."},
		{Step: 9, Name: "POD & Close", Description: "Proof of Delivery signed. Container returned. File closed. Invoice sent."},
	},
	AIUseCases: []domain.AIUseCase{
		{Area: "Email Classification", Description: "Auto-categorize incoming emails (booking requests, status inquiries, document submissions, complaints). Route to correct team.", Impact: "Reduces manual triage by 80%+"},
		{Area: "Document Extraction", Description: "Extract structured data from B/Ls, invoices, packing lists. Populate TMS automatically.", Impact: "Eliminates hours of manual data entry per shipment"},
		{Area: "Exception Management", Description: "Detect delays, missing documents, customs holds. Proactively notify stakeholders before they ask.", Impact: "Reduces resolution time from hours to minutes"},
		{Area: "Compliance Checks", Description: "Validate documents against regulations. Flag missing fields, incorrect Incoterms, sanctioned entities.", Impact: "Prevents costly customs delays and fines"},
	},
	Sources: []domain.TheorySource{},
}

// SystemPrompts holds the built-in system prompt per chat type, generated
// from DefaultDomain (pricing excepted, which is a static constant).
var SystemPrompts = map[domain.ChatType]string{
	domain.ChatTypeDomain:     BuildDomainPrompt(DefaultDomain),
	domain.ChatTypeFramework:  BuildFrameworkPrompt(DefaultDomain),
	domain.ChatTypeSimulation: BuildSimulationPrompt(DefaultDomain),
	domain.ChatTypePricing:    PricingSystemPrompt,
}

// SystemPrompt returns the built-in prompt for a chat type.
func SystemPrompt(t domain.ChatType) string {
	return SystemPrompts[t]
}

// SuggestedPrompts holds the built-in conversation starters per chat type.
var SuggestedPrompts = map[domain.ChatType][]string{
	domain.ChatTypeDomain: {
		"Explain what a freight forwarder does in simple terms",
		"What is a Bill of Lading and why does it matter?",
		"Walk me through a shipment's lifecycle from booking to delivery",
		"What are Incoterms? Explain FOB vs CIF vs DDP",
	},
	domain.ChatTypeFramework: {
		"Give me a mini-scenario to practice the 5-step framework",
		"Explain the UNDERSTAND step — what are the 4 lenses?",
		"What are the most common mistakes candidates make?",
		"How do I properly model entities and their relationships?",
	},
	domain.ChatTypeSimulation: {
		"Start a freight forwarding simulation — order management scenario",
		"Give me an operations exception case to work through",
		"Run a compliance-focused simulation",
		"Start a customer communication scenario",
	},
	domain.ChatTypePricing: {
		"¿Cuál es el mejor modelo de pricing para AI Workers en freight forwarding?",
		"Ayúdame a calcular unit economics para un cliente con 300 envíos/mes",
		"¿Cómo justificar el ROI de Traza frente al coste de operadores humanos?",
		"Diseña una propuesta de pricing 3-layer para un forwarder mediano",
		"¿Qué objeciones de precio esperamos y cómo las rebatimos?",
	},
}

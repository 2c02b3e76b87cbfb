package bizconfig

// BusinessConfig is the immutable per-call snapshot of everything the voice
// agent needs to know about the business. Built once per session by Merge and
// never mutated afterwards.
type BusinessConfig struct {
	CompanyName           string
	BusinessType          string
	CompanyPhone          string
	AddressLine           string
	City                  string
	State                 string
	Zip                   string
	ServiceAreaZips       []string
	AgentName             string
	DiagnosticPrice       float64
	EmergencySurcharge    float64
	ServiceTypes          []string
	BusinessHours         BusinessHours
	CustomPromptAdditions string
}

type BusinessHours struct {
	Weekday  DayHours
	Saturday DayHours
	Sunday   DayHours
}

type DayHours struct {
	Open   string
	Close  string
	Closed bool
}

// CompanySettings is the company-level source record. All fields are optional;
// the row itself may be missing entirely.
type CompanySettings struct {
	CompanyName     *string
	BusinessType    *string
	CompanyPhone    *string
	AddressLine     *string
	City            *string
	State           *string
	Zip             *string
	ServiceAreaZips []string
}

// AgentConfig is the agent-level source record. It duplicates some company
// fields (lower precedence) and carries the agent-only tuning knobs.
type AgentConfig struct {
	CompanyName           *string
	BusinessType          *string
	CompanyPhone          *string
	AgentName             *string
	DiagnosticPrice       *float64
	EmergencySurcharge    *float64
	ServiceAreaZips       []string
	ServiceTypes          []string
	BusinessHours         *BusinessHours
	CustomPromptAdditions *string
}

const (
	defaultCompanyName        = "Fixlify Services"
	defaultBusinessType       = "Home Services"
	defaultAgentName          = "Sarah"
	defaultDiagnosticPrice    = 89
	defaultEmergencySurcharge = 50
)

func defaultServiceTypes() []string {
	return []string{"Plumbing", "HVAC", "Electrical", "General Repair"}
}

func defaultBusinessHours() BusinessHours {
	return BusinessHours{
		Weekday:  DayHours{Open: "8:00 AM", Close: "6:00 PM"},
		Saturday: DayHours{Open: "9:00 AM", Close: "3:00 PM"},
		Sunday:   DayHours{Closed: true},
	}
}

// Merge combines the two source records into one fully-populated snapshot.
// Company fields win where both records carry a value; every field falls back
// to a hard-coded default, so a nil/nil input still yields a usable config.
func Merge(company *CompanySettings, agent *AgentConfig) BusinessConfig {
	if company == nil {
		company = &CompanySettings{}
	}
	if agent == nil {
		agent = &AgentConfig{}
	}

	cfg := BusinessConfig{
		CompanyName:           pick(company.CompanyName, agent.CompanyName, defaultCompanyName),
		BusinessType:          pick(company.BusinessType, agent.BusinessType, defaultBusinessType),
		CompanyPhone:          pick(company.CompanyPhone, agent.CompanyPhone, ""),
		AddressLine:           pick(company.AddressLine, nil, ""),
		City:                  pick(company.City, nil, ""),
		State:                 pick(company.State, nil, ""),
		Zip:                   pick(company.Zip, nil, ""),
		AgentName:             pick(nil, agent.AgentName, defaultAgentName),
		DiagnosticPrice:       pickFloat(agent.DiagnosticPrice, defaultDiagnosticPrice),
		EmergencySurcharge:    pickFloat(agent.EmergencySurcharge, defaultEmergencySurcharge),
		CustomPromptAdditions: pick(nil, agent.CustomPromptAdditions, ""),
	}

	cfg.ServiceAreaZips = pickSlice(company.ServiceAreaZips, agent.ServiceAreaZips, nil)
	cfg.ServiceTypes = pickSlice(agent.ServiceTypes, nil, defaultServiceTypes())
	if agent.BusinessHours != nil {
		cfg.BusinessHours = *agent.BusinessHours
	} else {
		cfg.BusinessHours = defaultBusinessHours()
	}
	return cfg
}

func pick(primary, secondary *string, fallback string) string {
	if primary != nil && *primary != "" {
		return *primary
	}
	if secondary != nil && *secondary != "" {
		return *secondary
	}
	return fallback
}

func pickFloat(v *float64, fallback float64) float64 {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}

func pickSlice(primary, secondary, fallback []string) []string {
	if len(primary) > 0 {
		return primary
	}
	if len(secondary) > 0 {
		return secondary
	}
	return fallback
}

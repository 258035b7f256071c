package clipdata

// CountryRecord is the canonical per-country entry persisted to countries.json.
type CountryRecord struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	DialCode string `json:"dial_code"`
	Emoji    string `json:"emoji"`
	FlagPath string `json:"flag_path"`
}

// UpstreamCountry is the best-effort projection of one remote country object.
type UpstreamCountry struct {
	Name         string
	Code         string
	DialRoot     string
	DialSuffixes []string
	FlagURL      string
}

// CountryReport summarizes one country pipeline run.
type CountryReport struct {
	Records        int
	Dropped        int
	Materialized   []string
	JSONPath       string
	Prefix         string
	ManifestSynced bool
	ManifestErr    error
	Stats          RunStats
}

// TemplateReport summarizes one translation template run.
type TemplateReport struct {
	Files       []string
	Skipped     []string
	Failed      []string
	Strings     int
	NothingToDo bool
	OutputPath  string
}

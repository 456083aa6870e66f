package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BundlePath string
	Prefix     string
	Locale     string
	OutputFile string
	LogFile    string
	Verbose    bool

	// Run modes
	ListTables  bool
	ListKind    string
	Dump        bool
	MergeFile   string
	ApplyPrefix string
	Suggest     bool
	ExportDB    string
	RepackPath  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Prefix: "gamestrings",
		Locale: "en",
	}
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML session file, controlling how the
// external solver process is launched. CLI flags override anything set here.
type SessionParameters struct {
	Title          string `yaml:"Title"`
	Executable     string `yaml:"Executable"`
	Precision      string `yaml:"Precision"` // "double" or "single"
	ProcessorCount int    `yaml:"ProcessorCount"`
	ShowGUI        bool   `yaml:"ShowGUI"`
}

// Defaults is the launch configuration used when no session file is given:
// double precision, one core, no GUI.
func Defaults() *SessionParameters {
	return &SessionParameters{
		Executable:     "fluent",
		Precision:      "double",
		ProcessorCount: 1,
	}
}

func (sp *SessionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SessionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Executable\n", sp.Executable)
	fmt.Printf("[%s]\t\t= Precision\n", sp.Precision)
	fmt.Printf("[%d]\t\t\t\t= Processor Count\n", sp.ProcessorCount)
	fmt.Printf("[%v]\t\t\t= Show GUI\n", sp.ShowGUI)
}

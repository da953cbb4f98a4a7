package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Radiation Study
Executable: /opt/solver/bin/fluent
Precision: double
ProcessorCount: 8
ShowGUI: true
`)
	sp := Defaults()
	if err = sp.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, "Radiation Study", sp.Title)
	assert.Equal(t, "/opt/solver/bin/fluent", sp.Executable)
	assert.Equal(t, 8, sp.ProcessorCount)
	assert.Equal(t, true, sp.ShowGUI)
	sp.Print()

	// Fields absent from the file keep their defaults
	sp = Defaults()
	if err = sp.Parse([]byte("ProcessorCount: 4\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, "fluent", sp.Executable)
	assert.Equal(t, "double", sp.Precision)
	assert.Equal(t, 4, sp.ProcessorCount)
	assert.Equal(t, false, sp.ShowGUI)
}

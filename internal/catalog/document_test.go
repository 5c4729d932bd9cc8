package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFields_YAMLDocument(t *testing.T) {
	t.Parallel()

	input := `
particles:
  - reference: Up Quark
    title: Up Quark
    symbol: u
    classes: [Quark, Fermion]
    antiparticle: Up Antiquark
    mass: 2.16 \times 10^{0} MeV
    charge: +2/3
  - reference: Photon
    mass: "0"
    charge: "0"
    mean_lifetime: stable
`
	records, err := ReadFields(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Up Quark", records[0].Reference)
	assert.Equal(t, []string{"Quark", "Fermion"}, records[0].Classes)
	assert.Equal(t, `2.16 \times 10^{0} MeV`, records[0].Mass)
	assert.Equal(t, "+2/3", records[0].Charge)
	assert.Equal(t, "stable", records[1].MeanLifetime)
}

func TestReadFields_BareList(t *testing.T) {
	t.Parallel()

	records, err := ReadFields(strings.NewReader("- reference: Tau\n  charge: \"-1\"\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "-1", records[0].Charge)
}

func TestReadFields_JSON(t *testing.T) {
	t.Parallel()

	input := `{"particles": [{"reference": "Muon", "mass": "1.883531627 \\times 10^{-28} kg"}]}`
	records, err := ReadFields(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `1.883531627 \times 10^{-28} kg`, records[0].Mass)
}

func TestReadFields_Errors(t *testing.T) {
	t.Parallel()

	records, err := ReadFields(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = ReadFields(strings.NewReader("just a string"))
	assert.Error(t, err)

	_, err = ReadFields(strings.NewReader("particles: [unclosed"))
	assert.Error(t, err)
}

func TestWriteDatabase(t *testing.T) {
	t.Parallel()

	db := Database{Particles: []Particle{{
		Reference:      "Electron",
		URLReference:   "electron",
		MainSymbol:     "e^{-}",
		RelativeCharge: "-1",
		Stable:         true,
		Mass: []domain.Record{{
			Significand: "511",
			Base:        "10",
			Exponent:    "0",
			Unit:        "keV",
			UnitClass:   "eV",
			Rounding:    "3sf",
			HTML:        "511 keV / c²",
			LaTeX:       `511 \, \frac{\mathrm{keV}}{c^{2}}`,
		}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, WriteDatabase(&buf, db))
	assert.Contains(t, buf.String(), `"HTML": "511 keV / c²"`)
	assert.Contains(t, buf.String(), `"RelativeCharge": "-1"`)
	assert.NotContains(t, buf.String(), "Unparsed")

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["Particles"], 1)
	assert.Equal(t, "electron", decoded["Particles"][0]["URLReference"])
}

func TestCompileFile(t *testing.T) {
	t.Parallel()
	c, _ := newTestCompiler(t, 2)

	path := filepath.Join(t.TempDir(), "particles.yaml")
	doc := `
- reference: Muon
  mass: 105.6583755 \times 10^{0} MeV
  charge: "-1"
- reference: Photon
  mass: "0"
  mean_lifetime: stable
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	results, err := c.CompileFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, results, 2)

	db := NewDatabase(results)
	muon, ok := db.Find("muon")
	require.True(t, ok)
	assert.Equal(t, "-1", muon.RelativeCharge)

	photon, ok := db.Find("photon")
	require.True(t, ok)
	assert.True(t, photon.Stable)

	_, ok = db.Find("tau")
	assert.False(t, ok)
}

func TestCompileFile_Errors(t *testing.T) {
	t.Parallel()
	c, _ := newTestCompiler(t, 1)

	_, err := c.CompileFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "scalar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("just a string\n"), 0o600))
	_, err = c.CompileFile(context.Background(), path)
	assert.ErrorContains(t, err, "scalar.yaml")
}

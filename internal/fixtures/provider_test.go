package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cessao-fidc/internal/model"
)

func TestStatic_SameDataForEverySimulation(t *testing.T) {
	p := Default()

	first, err := p.Statistics("1")
	require.NoError(t, err)
	for _, id := range []model.SimulationID{"2", "3"} {
		got, err := p.Statistics(id)
		require.NoError(t, err)
		assert.Equal(t, first, got, "simulation %s", id)
	}
}

func TestStatic_UnknownSimulation(t *testing.T) {
	p := Default()

	_, err := p.Statistics("9")
	assert.ErrorIs(t, err, ErrUnknownSimulation)
	_, err = p.Results("")
	assert.ErrorIs(t, err, ErrUnknownSimulation)

	assert.True(t, HasSimulation(p, "2"))
	assert.False(t, HasSimulation(p, "4"))
}

func TestStatic_ReturnsCopies(t *testing.T) {
	p := Default()

	st, err := p.Statistics("1")
	require.NoError(t, err)
	st.Maturity[0].Amount = -1

	again, err := p.Statistics("1")
	require.NoError(t, err)
	assert.Equal(t, 120000.0, again.Maturity[0].Amount)

	opts := p.DownloadOptions()
	opts[0].Label = "changed"
	assert.Equal(t, "Carteira Pós-Cessão", p.DownloadOptions()[0].Label)
}

func TestBuiltin_Catalog(t *testing.T) {
	p := Default()

	assert.Len(t, p.Simulations(), 3)
	assert.Len(t, p.DownloadOptions(), 3)
	assert.Len(t, p.DownloadHistory(), 3)
	assert.True(t, HasOption(p, model.OptionRejectedCredits))
	assert.False(t, HasOption(p, "relatorio-x"))

	r, err := p.Results("1")
	require.NoError(t, err)
	assert.Equal(t, 600, r.TotalRejections())
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path uses builtin", func(t *testing.T) {
		p, err := LoadFile("")
		require.NoError(t, err)
		assert.Len(t, p.Simulations(), 3)
	})

	t.Run("missing file uses builtin", func(t *testing.T) {
		p, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Len(t, p.DownloadOptions(), 3)
	})

	t.Run("overlay replaces present sections only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.yaml")
		yml := `
simulations:
  - id: "A"
    label: "Simulação A"
statistics:
  portfolio_total: 5000
  title_count: 7
  maturity:
    - month: Jul
      amount: 5000
`
		require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

		p, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, []model.Simulation{{ID: "A", Label: "Simulação A"}}, p.Simulations())
		st, err := p.Statistics("A")
		require.NoError(t, err)
		assert.Equal(t, 7, st.TitleCount)
		assert.Len(t, st.Maturity, 1)

		r, err := p.Results("A")
		require.NoError(t, err)
		assert.Equal(t, 1850, r.Approved.Count, "results keep builtin values")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("simulations: [\n"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestStatic_Dataset(t *testing.T) {
	ds := Default().Dataset()
	assert.Equal(t, Builtin().Simulations, ds.Simulations)
	assert.Equal(t, 1280000.0, ds.Statistics.PortfolioTotal)
	require.Len(t, ds.DownloadOptions, 3)
	assert.Equal(t, model.OptionApprovedPortfolio, ds.DownloadOptions[0].ID)
}

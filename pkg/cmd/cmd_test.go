package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingsCSV = `manufacturer,model,year,mileage,engine,transmission,drivetrain,mpg,exterior_color,interior_color,accident,price,seller_name,seller_rating
Toyota,Camry,2018,51000,2.5L I4,Automatic,Front-wheel Drive,28-39,Silver,Gray,No,20000,Alpha Motors,4.7
Honda,Civic,2017,,2.0L I4,CVT,Front-wheel Drive,32,Blue,Gray,Yes,15000,Beta Autos,4.9
Ford,Ranger,2020,9000,2.3L I4,Automatic,Four-wheel Drive,21-26,Red,Black,No,call,Alpha Motors,4.7
Mazda,CX-5,2021,12000,2.5L I4,Automatic,All-wheel Drive,25-31,White,Black,No,27000,Alpha Motors,4.7
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte(listingsCSV), 0o600))

	var stdout, stderr bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(append([]string{"--data", path, "--log-mode", "prod"}, args...))
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	err := RootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestReportCmd(t *testing.T) {
	stdout, stderr, err := run(t, "", "report")
	require.NoError(t, err)

	assert.Equal(t, "Alpha Motors has 2 cars in inventory.\nBeta Autos has 1 cars in inventory.\n", stdout)
	assert.Contains(t, stderr, "skipped row 3: parse price")
}

func TestRepriceCmd(t *testing.T) {
	stdout, _, err := run(t, "y\n", "reprice", "--row", "0", "--amount=-500")
	require.NoError(t, err)

	assert.Contains(t, stdout, "The price has been discounted by 500.00.")
	assert.Contains(t, stdout, "2018 Toyota Camry now priced at 19500.00")
}

func TestRepriceCmd_Declined(t *testing.T) {
	stdout, _, err := run(t, "n\n", "reprice", "--row", "1", "--amount=-500")
	require.NoError(t, err)

	assert.Contains(t, stdout, "2017 Honda Civic now priced at 500.00")
}

func TestRepriceCmd_RowOutOfRange(t *testing.T) {
	_, _, err := run(t, "", "reprice", "--row", "7", "--amount", "100")
	assert.Error(t, err)
}

func TestRepairCmd(t *testing.T) {
	stdout, _, err := run(t, "", "repair", "--row", "2", "--part", "engine", "--with", "V8")
	require.NoError(t, err)
	assert.Equal(t, "2021 Mazda CX-5: engine replaced with V8\n", stdout)

	_, _, err = run(t, "", "repair", "--row", "0", "--part", "wheels", "--with", "alloy")
	assert.ErrorContains(t, err, `invalid part "wheels"`)
}

func TestServeCmd_ListenError(t *testing.T) {
	_, _, err := run(t, "", "serve", "--address", "127.0.0.1:-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

package cli

import (
	"flag"
	"testing"

	"github.com/vipcxj/rangeconst/cmd"
	"github.com/vipcxj/rangeconst/cmdtest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("rangeconst", cmd.Execute)
	ts.RunWithUpdate(t, *update)
}

package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/dynarr/internal/logging"
	"github.com/pavanmanishd/dynarr/internal/suite"
)

var runCmd = &cobra.Command{
	Use:   "run [number of tests]",
	Short: "Run the dynamic array suite",
	Long: `Run the dynamic array timing suite.

The number of tests overrides the "runs" field of the config file.
Valid range is 1 to 4294967295.

Examples:
  dynbench run 100000
  dynbench run 0x1000 -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuite,
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "output format: text, yaml or json")
	runCmd.Flags().Bool("no-color", false, "disable styled headers in text output")
	runCmd.Flags().Int("bulk-chunk", -1, "elements per bulk append (0 skips the bulk run)")
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg, err := suite.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		runs, err := parseRuns(args[0])
		if err != nil {
			return err
		}
		cfg.Runs = runs
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output = output
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if chunk, _ := cmd.Flags().GetInt("bulk-chunk"); chunk >= 0 {
		cfg.BulkChunk = chunk
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Keep stdout clean for machine-readable output.
	console := logging.Console{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if cfg.Output != suite.OutputText {
		console.Out = cmd.ErrOrStderr()
	}
	log := console.Logger(progName)
	defer log.Sync() //nolint:errcheck

	log.Sugar().Infof("Running dynamic array suite with %d test(s) per run", cfg.Runs)
	report, err := suite.Dynamic(cfg, console.Logger("dynamic"))
	if err != nil {
		log.Error(err.Error())
		return errors.Wrap(err, "dynamic suite")
	}
	return writeReport(cmd.OutOrStdout(), cfg, report)
}

// parseRuns parses the number of tests like strtol with base 0: decimal,
// 0x hex, 0 or 0o octal and 0b binary.
func parseRuns(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrSyntax {
			return 0, errors.Errorf("invalid character for number: %s", markInvalid(s))
		}
		return 0, errors.Errorf("invalid number of runs `%s': valid range is 1 to %d", s, uint64(^uint32(0)))
	}
	if n <= 0 || n > int64(^uint32(0)) {
		return 0, errors.Errorf("invalid number of runs `%d': valid range is 1 to %d", n, uint64(^uint32(0)))
	}
	return int(n), nil
}

// markInvalid spells s out with spaces between characters and the first
// character that cannot be part of the number in brackets.
func markInvalid(s string) string {
	rs := []rune(s)
	at := invalidAt(rs)
	if at < 0 {
		return strconv.Quote(s)
	}

	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case i != at:
			b.WriteRune(r)
		case unicode.IsPrint(r):
			fmt.Fprintf(&b, "[%c]", r)
		default:
			fmt.Fprintf(&b, "[0x%x]", r)
		}
	}
	return b.String()
}

func invalidAt(rs []rune) int {
	i := 0
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-') {
		i++
	}
	base := 10
	if i+1 < len(rs) && rs[i] == '0' {
		switch unicode.ToLower(rs[i+1]) {
		case 'x':
			base, i = 16, i+2
		case 'o':
			base, i = 8, i+2
		case 'b':
			base, i = 2, i+2
		default:
			base, i = 8, i+1
		}
	}
	for ; i < len(rs); i++ {
		if rs[i] == '_' {
			continue
		}
		if _, err := strconv.ParseInt(string(rs[i]), base, 8); err != nil {
			return i
		}
	}
	return -1
}

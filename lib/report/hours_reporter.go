package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pescuma/devhours/lib/model"
)

// WriteHours writes one line per hour of the day with its share of all commits, like "[09:xx] 12.500%".
// A report without commits prints NaN for every hour.
func WriteHours(w io.Writer, report *model.HoursReport) error {
	out := bufio.NewWriter(w)

	for hour := 0; hour < model.HoursPerDay; hour++ {
		_, err := fmt.Fprintf(out, "[%02d:xx] %.3f%%\n", hour, report.Percentage(hour))
		if err != nil {
			return err
		}
	}

	return out.Flush()
}

package benchrun

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText renders a human-readable report for one workload.
func WriteText(w io.Writer, cfg Config, results []Result) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "==== %d elements, %d payload words (%s/element) ====\n",
		cfg.Count, cfg.PayloadWords, humanBytes(8*uint64(cfg.PayloadWords))); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := p.Fprintf(w,
			"%-9s construct %-12v access %-12v remove %-12v len %d\n",
			r.Container, r.Construct, r.Access, r.Remove, r.Len); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "          mem used ~%s, reserved ~%s\n",
			humanBytes(r.MemUsed), humanBytes(r.MemReserved)); err != nil {
			return err
		}
	}

	if rss, ok := maxRSSBytes(); ok {
		if _, err := fmt.Fprintf(w, "process max RSS: %s\n", humanBytes(rss)); err != nil {
			return err
		}
	}
	return nil
}

// humanBytes renders a byte count with binary-prefix units.
func humanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

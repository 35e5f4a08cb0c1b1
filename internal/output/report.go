package output

import (
	"fmt"
	"io"
	"strings"
)

// Render formats report with the named formatter and writes it to w.
func Render(w io.Writer, format string, report *Report) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func unsupported(formatter string, result any) error {
	return fmt.Errorf("%w: %s cannot render %T", ErrUnsupportedFormat, formatter, result)
}

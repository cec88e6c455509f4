package format

import "fmt"

// initColorScheme creates a ColorScheme from config, using the provided
// scheme or creating a default one.
func initColorScheme(config *FormatterConfig) *ColorScheme {
	colors := config.ColorScheme
	if colors == nil {
		colors = NewColorScheme(config.UseColor)
	}
	return colors
}

// errNilModel returns an error for a nil ForwardingModel.
func errNilModel(formatterName string) error {
	return fmt.Errorf("%s formatter: forwarding model cannot be nil", formatterName)
}

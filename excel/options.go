package excel

type options struct {
	create   bool
	absolute bool
}

func defaultOptions() *options {
	return &options{}
}

// Option configures a Sheet.
type Option func(*options)

// WithCreate adds the sheet to the workbook if it does not exist yet.
func WithCreate(create bool) Option {
	return func(o *options) { o.create = create }
}

// WithAbsolute makes Used return pinned coordinates ("$A$1") instead of
// relative ones ("A1").
func WithAbsolute(absolute bool) Option {
	return func(o *options) { o.absolute = absolute }
}

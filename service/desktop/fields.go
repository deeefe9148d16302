package desktop

// FieldValues holds the values for the field codes resolved before
// tokenizing. An empty value means the value is not available.
type FieldValues struct {
	// Icon replaces %i, prefixed with "--icon ".
	Icon string
	// Name replaces %c.
	Name string
	// Location replaces %k, the path of the descriptor file.
	Location string
}

const iconPrefix = "--icon "

// SubstituteFields replaces the %i, %c and %k field codes of template.
//
// A field code without a value is removed together with the space following
// it. At the end of the template, the preceding space is removed instead.
// Inserted values are never rescanned.
// "%%" and every other field code are left for Tokenize.
func SubstituteFields(template string, values FieldValues) string {
	out := make([]byte, 0, len(template)+len(iconPrefix)+len(values.Icon)+len(values.Name)+len(values.Location))
	// everything before inserted is substituted text and must not be touched
	inserted := 0

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			out = append(out, c)
			continue
		}

		var prefix, value string
		switch template[i+1] {
		case 'i':
			prefix, value = iconPrefix, values.Icon
		case 'c':
			value = values.Name
		case 'k':
			value = values.Location
		case '%':
			out = append(out, '%', '%')
			i++
			continue
		default:
			out = append(out, c)
			continue
		}
		i++

		if value != "" {
			out = append(out, prefix...)
			out = append(out, value...)
			inserted = len(out)
			continue
		}

		switch {
		case i+1 < len(template) && template[i+1] == ' ':
			i++
		case i+1 == len(template) && len(out) > inserted && out[len(out)-1] == ' ':
			out = out[:len(out)-1]
		}
	}

	return string(out)
}

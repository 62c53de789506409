package keyfile

// String returns the decoded value of key.
func (d *Document) String(groupName, key string, loc LocaleSpec) (string, bool) {
	raw, ok := d.Value(groupName, key, loc)
	if !ok {
		return "", false
	}
	return DecodeString(raw), true
}

// SetString escapes value and stores it.
func (d *Document) SetString(groupName, key, value string, loc LocaleSpec) error {
	return d.SetValue(groupName, key, EncodeString(value, 0), loc)
}

// StringList splits and decodes the value of key with the document's list
// separator. An empty value is an empty list.
func (d *Document) StringList(groupName, key string, loc LocaleSpec) ([]string, bool) {
	raw, ok := d.Value(groupName, key, loc)
	if !ok {
		return nil, false
	}
	return DecodeList(raw, d.separator), true
}

// SetStringList encodes each item and joins them with the list separator.
func (d *Document) SetStringList(groupName, key string, values []string, loc LocaleSpec) error {
	return d.SetValue(groupName, key, EncodeList(values, d.separator), loc)
}

// Bool reads key as a boolean. ok reports whether the key has a base
// value; err is set when it has one that is not "true" or "false".
// Translations are not consulted by the typed getters.
func (d *Document) Bool(groupName, key string) (bool, bool, error) {
	return scalar(d, groupName, key, ParseBool)
}

// SetBool stores value as "true" or "false".
func (d *Document) SetBool(groupName, key string, value bool) error {
	return d.SetValue(groupName, key, FormatBool(value), NoLocale)
}

// BoolList is like Bool for list values. Any bad item fails the whole list.
func (d *Document) BoolList(groupName, key string) ([]bool, bool, error) {
	return list(d, groupName, key, ParseBool)
}

func (d *Document) SetBoolList(groupName, key string, values []bool) error {
	return setList(d, groupName, key, values, FormatBool)
}

// Int reads key as a base-10 integer, with the contract of Bool.
func (d *Document) Int(groupName, key string) (int64, bool, error) {
	return scalar(d, groupName, key, ParseInt)
}

func (d *Document) SetInt(groupName, key string, value int64) error {
	return d.SetValue(groupName, key, FormatInt(value), NoLocale)
}

// IntList is like Int for list values.
func (d *Document) IntList(groupName, key string) ([]int64, bool, error) {
	return list(d, groupName, key, ParseInt)
}

func (d *Document) SetIntList(groupName, key string, values []int64) error {
	return setList(d, groupName, key, values, FormatInt)
}

// Float reads key as a float, with the contract of Bool.
func (d *Document) Float(groupName, key string) (float64, bool, error) {
	return scalar(d, groupName, key, ParseFloat)
}

// SetFloat stores the shortest representation of value that reads back
// the same.
func (d *Document) SetFloat(groupName, key string, value float64) error {
	return d.SetValue(groupName, key, FormatFloat(value), NoLocale)
}

// FloatList is like Float for list values.
func (d *Document) FloatList(groupName, key string) ([]float64, bool, error) {
	return list(d, groupName, key, ParseFloat)
}

func (d *Document) SetFloatList(groupName, key string, values []float64) error {
	return setList(d, groupName, key, values, FormatFloat)
}

func scalar[T any](d *Document, groupName, key string, parse func(string) (T, error)) (T, bool, error) {
	var zero T
	raw, ok := d.Value(groupName, key, NoLocale)
	if !ok {
		return zero, false, nil
	}
	v, err := parse(raw)
	if err != nil {
		return zero, true, err
	}
	return v, true, nil
}

func list[T any](d *Document, groupName, key string, parse func(string) (T, error)) ([]T, bool, error) {
	raw, ok := d.Value(groupName, key, NoLocale)
	if !ok {
		return nil, false, nil
	}
	items := DecodeList(raw, d.separator)
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := parse(item)
		if err != nil {
			return nil, true, err
		}
		out = append(out, v)
	}
	return out, true, nil
}

func setList[T any](d *Document, groupName, key string, values []T, format func(T) string) error {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = format(v)
	}
	return d.SetValue(groupName, key, EncodeList(items, d.separator), NoLocale)
}

package ua

// QualifiedName pairs a namespace index with a non-localized name, used to
// identify browse names, reference types and data type fields.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           String
}

// NewQualifiedName constructs a non-null QualifiedName.
func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{NamespaceIndex: ns, Name: NewString(name)}
}

// EncodedSize returns the wire size.
func (q QualifiedName) EncodedSize() int {
	return 2 + q.Name.EncodedSize()
}

// Encode writes NamespaceIndex followed by Name.
func (q QualifiedName) Encode(e *Encoder) error {
	if err := e.WriteUint16(q.NamespaceIndex); err != nil {
		return err
	}
	return q.Name.Encode(e)
}

// DecodeQualifiedName reads a QualifiedName.
func DecodeQualifiedName(d *Decoder) (QualifiedName, error) {
	ns, err := d.ReadUint16()
	if err != nil {
		return QualifiedName{}, err
	}
	name, err := DecodeString(d)
	if err != nil {
		return QualifiedName{}, err
	}
	return QualifiedName{NamespaceIndex: ns, Name: name}, nil
}

// Equal compares two QualifiedNames.
func (q QualifiedName) Equal(o QualifiedName) bool {
	return q.NamespaceIndex == o.NamespaceIndex && q.Name.Equal(o.Name)
}

// LocalizedText is human-readable text in a named locale. Locale and Text
// are each independently optional; a 1-byte encoding mask on the wire
// records which are present so the null/absent distinction survives a
// round trip without sending two -1 length prefixes.
type LocalizedText struct {
	Locale String
	Text   String
}

// NewLocalizedText constructs a LocalizedText with both fields present.
func NewLocalizedText(locale, text string) LocalizedText {
	return LocalizedText{Locale: NewString(locale), Text: NewString(text)}
}

const (
	localizedTextLocaleMask = 0x01
	localizedTextTextMask   = 0x02
)

// EncodedSize returns the wire size including the leading mask byte.
func (l LocalizedText) EncodedSize() int {
	n := 1
	if l.Locale.Valid {
		n += l.Locale.EncodedSize()
	}
	if l.Text.Valid {
		n += l.Text.EncodedSize()
	}
	return n
}

// Encode writes the encoding mask followed by whichever fields are present.
func (l LocalizedText) Encode(e *Encoder) error {
	var mask byte
	if l.Locale.Valid {
		mask |= localizedTextLocaleMask
	}
	if l.Text.Valid {
		mask |= localizedTextTextMask
	}
	if err := e.WriteByte(mask); err != nil {
		return err
	}
	if l.Locale.Valid {
		if err := l.Locale.Encode(e); err != nil {
			return err
		}
	}
	if l.Text.Valid {
		if err := l.Text.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLocalizedText reads a LocalizedText.
func DecodeLocalizedText(d *Decoder) (LocalizedText, error) {
	mask, err := d.ReadByte()
	if err != nil {
		return LocalizedText{}, err
	}
	var l LocalizedText
	if mask&localizedTextLocaleMask != 0 {
		if l.Locale, err = DecodeString(d); err != nil {
			return LocalizedText{}, err
		}
	}
	if mask&localizedTextTextMask != 0 {
		if l.Text, err = DecodeString(d); err != nil {
			return LocalizedText{}, err
		}
	}
	return l, nil
}

// Equal compares two LocalizedTexts field by field.
func (l LocalizedText) Equal(o LocalizedText) bool {
	return l.Locale.Equal(o.Locale) && l.Text.Equal(o.Text)
}

package recur

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// WriteXMLValue writes the interchange form as XML tokens: one element named
// by the lower-cased value-type tag, holding one child element per scalar
// entry and one child per item of each list entry, in part insertion order.
// Fails with ErrMalformedTimestamp when the UNTIL part cannot be
// interpreted.
func (r *Recur) WriteXMLValue(e *xml.Encoder) error {
	outer := xml.StartElement{Name: xml.Name{Local: strings.ToLower(r.ValueType())}}
	if err := e.EncodeToken(outer); err != nil {
		return err
	}
	for _, part := range r.parts {
		key, value, err := interchangeEntry(part)
		if err != nil {
			return err
		}
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				if err := writeXMLElement(e, key, item); err != nil {
					return err
				}
			}
		case int:
			if err := writeXMLElement(e, key, strconv.Itoa(v)); err != nil {
				return err
			}
		case string:
			if err := writeXMLElement(e, key, v); err != nil {
				return err
			}
		}
	}
	if err := e.EncodeToken(outer.End()); err != nil {
		return err
	}
	return e.Flush()
}

func writeXMLElement(e *xml.Encoder, name, value string) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	if err := e.EncodeToken(el); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(value)); err != nil {
		return err
	}
	return e.EncodeToken(el.End())
}

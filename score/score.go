package score

import (
	"encoding/xml"
	"io"
	"strconv"

	"golang.org/x/net/html/charset"
)

// Doc is a parsed score-partwise document.
type Doc struct {
	XMLName        xml.Name       `xml:"score-partwise"`
	Work           Work           `xml:"work"`
	Identification Identification `xml:"identification"`
	PartList       PartList       `xml:"part-list"`
	Parts          []Part         `xml:"part"`
}

type Work struct {
	Title string `xml:"work-title"`
}

type Identification struct {
	Composer string `xml:"creator"`
}

type PartList struct {
	ScoreParts []ScorePart `xml:"score-part"`
}

type ScorePart struct {
	Id   string `xml:"id,attr"`
	Name string `xml:"part-name"`
}

type Part struct {
	Id       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

// Measure keeps note/backup/forward events in document order; the builder
// depends on that order to run its time cursor.
type Measure struct {
	Number int
	Attrs  Attributes
	Events []interface{}
}

func (m *Measure) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "number" {
			m.Number, _ = strconv.Atoi(attr.Value)
		}
	}

	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "attributes":
				if err := d.DecodeElement(&m.Attrs, &t); err != nil {
					return err
				}
			case "note":
				var n Note
				if err := d.DecodeElement(&n, &t); err != nil {
					return err
				}
				m.Events = append(m.Events, n)
			case "backup":
				var b Backup
				if err := d.DecodeElement(&b, &t); err != nil {
					return err
				}
				m.Events = append(m.Events, b)
			case "forward":
				var f Forward
				if err := d.DecodeElement(&f, &t); err != nil {
					return err
				}
				m.Events = append(m.Events, f)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "measure" {
				return nil
			}
		}
	}
	return nil
}

type Attributes struct {
	Divisions int  `xml:"divisions"`
	Key       Key  `xml:"key"`
	Time      Time `xml:"time"`
	Clef      Clef `xml:"clef"`
}

type Key struct {
	Fifths int    `xml:"fifths"`
	Mode   string `xml:"mode"`
}

type Time struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type Clef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

// Note is one raw note element. Duration stays a string so a single
// unparseable duration is recoverable by the builder instead of failing the
// whole document decode.
type Note struct {
	Pitch    Pitch    `xml:"pitch"`
	Duration string   `xml:"duration"`
	Voice    string   `xml:"voice"`
	Type     string   `xml:"type"`
	Ties     []Tie    `xml:"tie"`
	Beams    []Beam   `xml:"beam"`
	Staff    string   `xml:"staff"`
	Rest     xml.Name `xml:"rest"`
	Chord    xml.Name `xml:"chord"`
	Grace    xml.Name `xml:"grace"`
}

func (n *Note) IsRest() bool  { return n.Rest.Local != "" }
func (n *Note) IsChord() bool { return n.Chord.Local != "" }
func (n *Note) IsGrace() bool { return n.Grace.Local != "" }

type Pitch struct {
	Step   string `xml:"step"`
	Octave int    `xml:"octave"`
	Alter  int    `xml:"alter"`
}

type Tie struct {
	Type string `xml:"type,attr"`
}

type Beam struct {
	Number int    `xml:"number,attr"`
	Value  string `xml:",chardata"`
}

type Backup struct {
	Duration string `xml:"duration"`
}

type Forward struct {
	Duration string `xml:"duration"`
	Voice    string `xml:"voice"`
}

// Decode parses a plain MusicXML document.
func Decode(r io.Reader) (*Doc, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	var d Doc
	if err := dec.Decode(&d); err != nil {
		return nil, &ImportError{Cause: "document is not well-formed XML: " + err.Error()}
	}
	return &d, nil
}

// FindDivisions returns the first declared divisions value, defaulting to 1
// when the document never declares one.
func (d *Doc) FindDivisions() int {
	for _, part := range d.Parts {
		for _, measure := range part.Measures {
			if measure.Attrs.Divisions != 0 {
				return measure.Attrs.Divisions
			}
		}
	}
	return 1
}

// PartOrder returns the part-list position of the given part id, used as
// the interleaver's tiebreak. Parts missing from the part-list sort after
// listed ones, in document order.
func (d *Doc) PartOrder(id string, docIdx int) int {
	for i, sp := range d.PartList.ScoreParts {
		if sp.Id == id {
			return i
		}
	}
	return len(d.PartList.ScoreParts) + docIdx
}

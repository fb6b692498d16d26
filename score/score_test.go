package score

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const simpleXML = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <work><work-title>Little Study</work-title></work>
  <identification><creator type="composer">Anon</creator></identification>
  <part-list>
    <score-part id="P1"><part-name>Treble</part-name></score-part>
    <score-part id="P2"><part-name>Bass</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="1">
      <attributes>
        <divisions>2</divisions>
        <time><beats>3</beats><beat-type>4</beat-type></time>
      </attributes>
      <note><pitch><step>C</step><octave>4</octave></pitch><duration>2</duration><voice>1</voice><type>quarter</type></note>
      <backup><duration>2</duration></backup>
      <note><pitch><step>E</step><octave>3</octave></pitch><duration>2</duration><voice>2</voice><type>quarter</type></note>
      <forward><duration>2</duration></forward>
      <note><rest/><duration>2</duration><voice>1</voice><type>quarter</type></note>
    </measure>
  </part>
  <part id="P2">
    <measure number="1">
      <note><pitch><step>G</step><octave>2</octave></pitch><duration>6</duration><voice>1</voice><type>half</type></note>
    </measure>
  </part>
</score-partwise>`

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const containerXML = `<?xml version="1.0"?>
<container>
  <rootfiles>
    <rootfile full-path="study.xml" media-type="application/vnd.recordare.musicxml+xml"/>
  </rootfiles>
</container>`

func TestDecodePlainXML(t *testing.T) {
	doc, err := Read([]byte(simpleXML), "study.xml")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Little Study", doc.Work.Title)
	assert.Equal("Anon", doc.Identification.Composer)
	assert.Equal(2, len(doc.Parts))
	assert.Equal(2, len(doc.PartList.ScoreParts))
	assert.Equal(2, doc.FindDivisions())
}

func TestMeasurePreservesEventOrder(t *testing.T) {
	doc, err := Read([]byte(simpleXML), "study.xml")

	assert := assert.New(t)
	assert.NoError(err)

	events := doc.Parts[0].Measures[0].Events
	assert.Equal(5, len(events))
	assert.IsType(Note{}, events[0])
	assert.IsType(Backup{}, events[1])
	assert.IsType(Note{}, events[2])
	assert.IsType(Forward{}, events[3])
	assert.IsType(Note{}, events[4])

	rest := events[4].(Note)
	assert.True(rest.IsRest())
	assert.Equal("2", rest.Duration)
}

func TestDecodeNoteFields(t *testing.T) {
	doc, err := Read([]byte(simpleXML), "study.xml")

	assert := assert.New(t)
	assert.NoError(err)

	n := doc.Parts[0].Measures[0].Events[0].(Note)
	assert.Equal("C", n.Pitch.Step)
	assert.Equal(4, n.Pitch.Octave)
	assert.Equal("1", n.Voice)
	assert.Equal("quarter", n.Type)
	assert.False(n.IsChord())
	assert.False(n.IsRest())
}

func TestReadArchive(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"META-INF/container.xml": containerXML,
		"study.xml":              simpleXML,
	})
	doc, err := Read(data, "study.mxl")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Little Study", doc.Work.Title)
}

func TestReadArchiveMissingContainer(t *testing.T) {
	data := buildArchive(t, map[string]string{"study.xml": simpleXML})
	_, err := Read(data, "study.mxl")

	assert := assert.New(t)
	assert.Error(err)
	assert.IsType(&ImportError{}, err)
	assert.Contains(err.Error(), "META-INF/container.xml")
}

func TestReadArchiveNoRootfilePath(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles><rootfile/></rootfiles></container>`,
		"study.xml":              simpleXML,
	})
	_, err := Read(data, "study.mxl")

	assert := assert.New(t)
	assert.Error(err)
	assert.IsType(&ImportError{}, err)
	assert.Contains(err.Error(), "names no rootfile")
}

func TestReadArchiveMissingRootfileEntry(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"META-INF/container.xml": containerXML,
	})
	_, err := Read(data, "study.mxl")

	assert := assert.New(t)
	assert.Error(err)
	assert.IsType(&ImportError{}, err)
	assert.Contains(err.Error(), "study.xml")
}

func TestReadNotAnArchive(t *testing.T) {
	_, err := Read([]byte("definitely not a zip"), "study.mxl")

	assert := assert.New(t)
	assert.Error(err)
	assert.IsType(&ImportError{}, err)
}

func TestReadMalformedXML(t *testing.T) {
	_, err := Read([]byte("<score-partwise><part"), "study.xml")

	assert := assert.New(t)
	assert.Error(err)
	assert.IsType(&ImportError{}, err)
}

func TestDivisionsDefaultToOne(t *testing.T) {
	xml := strings.Replace(simpleXML, "<divisions>2</divisions>", "", 1)
	doc, err := Read([]byte(xml), "study.xml")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, doc.FindDivisions())
}

func TestPartOrderFollowsPartList(t *testing.T) {
	doc, err := Read([]byte(simpleXML), "study.xml")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, doc.PartOrder("P1", 0))
	assert.Equal(1, doc.PartOrder("P2", 1))
	// unlisted parts sort after listed ones
	assert.Equal(5, doc.PartOrder("P9", 3))
}

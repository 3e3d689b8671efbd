package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
)

// readFile is a test seam for attachment files.
var readFile = os.ReadFile

// captureDraft walks the user through one observation, one measurement and
// one action. Each part can be skipped with an empty first answer.
func captureDraft(reader *bufio.Reader, w io.Writer, siteID string) (*models.Draft, error) {
	d := &models.Draft{SiteID: siteID}

	obs, err := captureObservation(reader, w)
	if err != nil {
		return nil, err
	}
	if obs != nil {
		d.Observations = append(d.Observations, *obs)
	}

	m, err := captureMeasurement(reader, w)
	if err != nil {
		return nil, err
	}
	if m != nil {
		d.Measurements = append(d.Measurements, *m)
	}

	act, err := captureAction(reader, w)
	if err != nil {
		return nil, err
	}
	if act != nil {
		d.Actions = append(d.Actions, *act)
	}

	return d, nil
}

func captureObservation(reader *bufio.Reader, w io.Writer) (*models.Observation, error) {
	text, err := GetMultiline(reader, "Observation (empty to skip)", w)
	if err != nil || text == "" {
		return nil, err
	}
	o := &models.Observation{Text: text}

	if o.Category, err = GetSimpleText(reader, "Category", w); err != nil {
		return nil, err
	}
	sev, err := GetSimpleText(reader, "Severity (info/watch/blocking)", w)
	if err != nil {
		return nil, err
	}
	if o.Severity, err = models.ParseSeverity(sev); err != nil {
		return nil, err
	}
	tags, err := GetSimpleText(reader, "Weather tags, comma separated", w)
	if err != nil {
		return nil, err
	}
	o.WeatherTags = splitTags(tags)

	if o.Attachment, err = attachFile(reader, w, "Photo file (empty for none)"); err != nil {
		return nil, err
	}
	return o, nil
}

func captureMeasurement(reader *bufio.Reader, w io.Writer) (*models.Measurement, error) {
	label, err := GetSimpleText(reader, "Measurement label (empty to skip)", w)
	if err != nil || label == "" {
		return nil, err
	}
	m := &models.Measurement{Label: label}

	if m.GeometryType, err = GetSimpleText(reader, "Geometry type", w); err != nil {
		return nil, err
	}
	if m.Dimensions, err = GetDimensions(reader, w); err != nil {
		return nil, err
	}
	if m.Derived.Surface, err = GetFloat(reader, "Surface (m2)", w); err != nil {
		return nil, err
	}
	if m.Derived.CoatingVolume, err = GetFloat(reader, "Coating volume (l)", w); err != nil {
		return nil, err
	}
	if m.Derived.AbrasiveMass, err = GetFloat(reader, "Abrasive mass (kg)", w); err != nil {
		return nil, err
	}
	if m.SketchAttachment, err = attachFile(reader, w, "Sketch file (empty for none)"); err != nil {
		return nil, err
	}
	return m, nil
}

func captureAction(reader *bufio.Reader, w io.Writer) (*models.Action, error) {
	desc, err := GetSimpleText(reader, "Corrective action (empty to skip)", w)
	if err != nil || desc == "" {
		return nil, err
	}
	a := &models.Action{Description: desc}
	if a.Assignee, err = GetSimpleText(reader, "Assignee", w); err != nil {
		return nil, err
	}
	if a.DueDate, err = GetDate(reader, "Due date YYYY-MM-DD (empty for none)", w); err != nil {
		return nil, err
	}
	return a, nil
}

// attachFile reads the named file into an inline attachment. The MIME type
// is sniffed from the content.
func attachFile(reader *bufio.Reader, w io.Writer, prompt string) (models.Attachment, error) {
	path, err := GetSimpleText(reader, prompt, w)
	if err != nil || path == "" {
		return nil, err
	}
	data, err := readFile(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment %s is empty", path)
	}
	return models.NewInlineAttachment(mimetype.Detect(data).String(), data), nil
}

// Save captures a report for the current site and queues it.
func (a *App) Save(ctx context.Context) error {
	site := a.currentSite()
	if site == "" {
		return fmt.Errorf("select a site first: site <id>")
	}
	d, err := captureDraft(a.reader, a.out, site)
	if err != nil {
		return err
	}
	id, err := a.drafts.Save(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved draft %s", id)
	if n := d.InlineCount(); n > 0 {
		fmt.Fprintf(a.out, " with %d attachment(s)", n)
	}
	fmt.Fprintln(a.out)
	return nil
}

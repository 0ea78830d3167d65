package calendar

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type monthRecord struct {
	Year         int    `yaml:"year"`
	Month        int    `yaml:"month"`
	Name         string `yaml:"name"`
	Days         int    `yaml:"days"`
	FirstWeekday string `yaml:"first_weekday"`
	Row          int    `yaml:"row"`
	Column       int    `yaml:"column"`
}

type layoutDocument struct {
	Months []monthRecord `yaml:"months"`
}

// EncodeYAML writes the layout of rows to w as a YAML document.
func EncodeYAML(w io.Writer, rows [][]Month) error {
	var doc layoutDocument
	for r, row := range rows {
		for c, m := range row {
			doc.Months = append(doc.Months, monthRecord{
				Year:         m.Year,
				Month:        int(m.Month),
				Name:         m.Month.String(),
				Days:         m.Days(),
				FirstWeekday: m.FirstWeekday().String(),
				Row:          r,
				Column:       c,
			})
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode calendar yaml")
	}
	return errors.Wrap(enc.Close(), "encode calendar yaml")
}

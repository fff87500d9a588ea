package file

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/philipbinhu/Stock/internal/model"
	"github.com/philipbinhu/Stock/internal/storage"
	cointime "github.com/philipbinhu/Stock/internal/time"
	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

const (
	TimestampColumn = "timestamp"
	CloseColumn     = "close"
)

// CSV describes the layout of a price csv file.
// Rows are expected most recent first.
type CSV struct {
	TimeColumn  string
	ValueColumn string
	Location    *time.Location
}

// DefaultCSV returns the layout for timestamp and close columns in UTC.
func DefaultCSV() CSV {
	return CSV{
		TimeColumn:  TimestampColumn,
		ValueColumn: CloseColumn,
		Location:    time.UTC,
	}
}

// Parse reads the prices from the given reader, in the order of the file.
func (c CSV) Parse(ctx context.Context, r io.ReadSeeker) ([]model.Price, error) {
	df, err := imports.LoadFromCSV(ctx, r, imports.CSVLoadOptions{
		TrimLeadingSpace: true,
		DictateDataType: map[string]interface{}{
			c.TimeColumn:  "",
			c.ValueColumn: float64(0),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not parse csv: %s: %w", err.Error(), storage.CouldNotLoadErr)
	}

	timeCol, err := column(df, c.TimeColumn)
	if err != nil {
		return nil, err
	}
	valueCol, err := column(df, c.ValueColumn)
	if err != nil {
		return nil, err
	}

	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}

	prices := make([]model.Price, df.NRows())
	for i := range prices {
		ts, ok := df.Series[timeCol].Value(i).(string)
		if !ok {
			return nil, fmt.Errorf("missing timestamp at row %d: %w", i, storage.CouldNotLoadErr)
		}
		t, err := cointime.Parse(ts, loc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i, err.Error(), storage.CouldNotLoadErr)
		}
		v, ok := df.Series[valueCol].Value(i).(float64)
		if !ok {
			return nil, fmt.Errorf("missing value at row %d: %w", i, storage.CouldNotLoadErr)
		}
		prices[i] = model.Price{
			Value: v,
			Time:  t,
		}
	}
	return prices, nil
}

// Load reads the series from the given reader.
// The first row is held out as the query point, offsets are whole days from the last row.
func (c CSV) Load(ctx context.Context, name string, r io.ReadSeeker) (model.Series, error) {
	prices, err := c.Parse(ctx, r)
	if err != nil {
		return model.Series{}, fmt.Errorf("could not load '%s': %w", name, err)
	}
	return NewSeries(name, prices)
}

// NewSeries creates the series for the given prices, ordered most recent first.
func NewSeries(name string, prices []model.Price) (model.Series, error) {
	if len(prices) < 2 {
		return model.Series{}, fmt.Errorf("series '%s' needs at least 2 rows but has %d: %w", name, len(prices), storage.CouldNotLoadErr)
	}

	earliest := prices[len(prices)-1].Time
	history := prices[1:]

	s := model.Series{
		Name:     name,
		X:        make([]int, len(history)),
		Y:        make([]float64, len(history)),
		QueryX:   cointime.Days(earliest, prices[0].Time),
		Truth:    prices[0].Value,
		Earliest: earliest,
	}
	for i, p := range history {
		s.X[i] = cointime.Days(earliest, p.Time)
		s.Y[i] = p.Value
	}
	return s, nil
}

func column(df *dataframe.DataFrame, name string) (int, error) {
	idx, err := df.NameToColumn(name)
	if err != nil {
		return 0, fmt.Errorf("missing column '%s': %w", name, storage.CouldNotLoadErr)
	}
	return idx, nil
}

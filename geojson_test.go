package geostat

import (
	"testing"

	"github.com/flywave/go-geoid"
	"github.com/flywave/go-geom/general"
	"github.com/stretchr/testify/assert"
)

const pointFixture = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Point", "coordinates": [103.5, 30.2, 412.5]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "MultiPoint", "coordinates": [[103.6, 30.3, 418.0], [103.7, 30.4, 425.25]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "LineString", "coordinates": [[103.8, 30.5, 430.0], [103.9, 30.6, 433.5]]}}
  ]
}`

func TestSamplesFromFeatureCollection(t *testing.T) {
	a := assert.New(t)

	fc, err := general.UnmarshalFeatureCollection([]byte(pointFixture))
	a.NoError(err)

	samples, err := SamplesFromFeatureCollection(fc, nil)
	a.NoError(err)
	a.Len(samples, 5)
	a.Equal(SamplePoint{X: 103.5, Y: 30.2, Value: 412.5}, samples[0])
	a.Equal(SamplePoint{X: 103.7, Y: 30.4, Value: 425.25}, samples[2])
	a.Equal(SamplePoint{X: 103.9, Y: 30.6, Value: 433.5}, samples[4])
}

func TestSamplesFromFeatureCollectionEmpty(t *testing.T) {
	a := assert.New(t)

	_, err := SamplesFromFeatureCollection(nil, nil)
	a.ErrorIs(err, ErrNoSamples)

	fc, err := general.UnmarshalFeatureCollection([]byte(`{"type":"FeatureCollection","features":[]}`))
	a.NoError(err)
	_, err = SamplesFromFeatureCollection(fc, nil)
	a.ErrorIs(err, ErrNoSamples)
}

func TestConvertHeightsOffset(t *testing.T) {
	a := assert.New(t)

	samples := []SamplePoint{
		{X: 103.5, Y: 30.2, Value: 412.5},
		{X: 103.6, Y: 30.3, Value: 418.0},
	}

	ConvertHeights(samples, geoid.HAE, 2.5)
	a.Equal(415.0, samples[0].Value)
	a.Equal(420.5, samples[1].Value)

	// UNKNOWN leaves values alone.
	ConvertHeights(samples, geoid.UNKNOWN, 100)
	a.Equal(415.0, samples[0].Value)
}

package convert

// MeasurementInfo describes the measurement intent recorded for one
// readout register. A nil QubitMapping marks "no explicit mapping".
type MeasurementInfo struct {
	Repetitions  int
	QubitMapping map[int]int
}

// Metadata accumulates measurement intents that have no representation in
// the target instruction stream, keyed by readout register name. At most
// one entry exists per register; a later repeated-measurement pragma for
// the same register overwrites the earlier entry.
type Metadata struct {
	Measurements map[string]MeasurementInfo
}

// NewMetadata returns an empty metadata record.
func NewMetadata() *Metadata {
	return &Metadata{Measurements: make(map[string]MeasurementInfo)}
}

func (m *Metadata) record(register string, info MeasurementInfo) {
	m.Measurements[register] = info
}

// Contains reports whether the metadata holds exactly the given entry.
// A nil mapping matches only the "no explicit mapping" marker.
func (m *Metadata) Contains(register string, repetitions int, mapping map[int]int) bool {
	info, ok := m.Measurements[register]
	if !ok || info.Repetitions != repetitions {
		return false
	}
	if (info.QubitMapping == nil) != (mapping == nil) || len(info.QubitMapping) != len(mapping) {
		return false
	}
	for q, b := range mapping {
		if got, ok := info.QubitMapping[q]; !ok || got != b {
			return false
		}
	}
	return true
}

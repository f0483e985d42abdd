package model

// RawMetrics is the timing record written by curl. Times are cumulative
// seconds since the start of the request.
type RawMetrics struct {
	NameLookup    float64
	Connect       float64
	AppConnect    float64
	PreTransfer   float64
	Redirect      float64
	StartTransfer float64
	Total         float64

	// SpeedDownload and SpeedUpload are average bytes per second.
	SpeedDownload float64
	SpeedUpload   float64

	RemoteIP   string
	RemotePort string
	LocalIP    string
	LocalPort  string
}

const millisPerSecond = 1000

// Cumulative returns the cumulative timestamps in milliseconds.
func (m RawMetrics) Cumulative() Cumulative {
	return Cumulative{
		NameLookup:    m.NameLookup * millisPerSecond,
		Connect:       m.Connect * millisPerSecond,
		AppConnect:    m.AppConnect * millisPerSecond,
		PreTransfer:   m.PreTransfer * millisPerSecond,
		StartTransfer: m.StartTransfer * millisPerSecond,
		Total:         m.Total * millisPerSecond,
	}
}

// Cumulative holds cumulative timestamps in milliseconds.
type Cumulative struct {
	NameLookup float64
	Connect    float64
	// AppConnect is carried along but not part of the breakdown; the TLS
	// phase spans connect to pretransfer.
	AppConnect    float64
	PreTransfer   float64
	StartTransfer float64
	Total         float64
}

// Phases derives the interval spent in each phase. Values are not
// validated and are negative when the input is not monotonic.
func (c Cumulative) Phases() PhaseDurations {
	return PhaseDurations{
		DNS:      c.NameLookup,
		TCP:      c.Connect - c.NameLookup,
		TLS:      c.PreTransfer - c.Connect,
		Server:   c.StartTransfer - c.PreTransfer,
		Transfer: c.Total - c.StartTransfer,
	}
}

func (c Cumulative) Labels() CumulativeLabels {
	return CumulativeLabels{
		NameLookup:    c.NameLookup,
		Connect:       c.Connect,
		PreTransfer:   c.PreTransfer,
		StartTransfer: c.StartTransfer,
		Total:         c.Total,
	}
}

// PhaseCount is the number of phases in a breakdown.
const PhaseCount = 5

// PhaseDurations are non-cumulative intervals in milliseconds.
type PhaseDurations struct {
	DNS      float64
	TCP      float64
	TLS      float64
	Server   float64
	Transfer float64
}

// Values returns the durations in request order.
func (p PhaseDurations) Values() [PhaseCount]float64 {
	return [PhaseCount]float64{p.DNS, p.TCP, p.TLS, p.Server, p.Transfer}
}

// CumulativeLabels are the timestamps printed below each phase boundary.
type CumulativeLabels struct {
	NameLookup    float64
	Connect       float64
	PreTransfer   float64
	StartTransfer float64
	Total         float64
}

// Values returns the labels in request order.
func (l CumulativeLabels) Values() [PhaseCount]float64 {
	return [PhaseCount]float64{l.NameLookup, l.Connect, l.PreTransfer, l.StartTransfer, l.Total}
}

// HeaderLines are response header lines in wire order. Line 0 is the
// status line.
type HeaderLines []string

package domain

// Message classes carried on every record.
const (
	ClassSingleline = "singleline"
	ClassMultiline  = "multiline"
)

// Record is the canonical unit of output: one decoded AIS message with its
// transport metadata. Every field is present on every record; fields a given
// message type does not populate keep their zero value. The raw sentence is
// carried through the pipeline but never serialized.
type Record struct {
	Sentence                 string  `json:"-"`
	LandfallTime             string  `json:"landfall_time"`
	Group                    string  `json:"group"`
	SatelliteAcquisitionTime string  `json:"satellite_acquisition_time"`
	Source                   string  `json:"source"`
	Channel                  string  `json:"channel"`
	RawPayload               string  `json:"raw_payload"`
	MessageType              uint64  `json:"message_type"`
	MessageClass             string  `json:"message_class"`
	MMSI                     string  `json:"mmsi"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	CallSign                 string  `json:"call_sign"`
	Destination              string  `json:"destination"`
	Name                     string  `json:"name"`
	ShipType                 string  `json:"ship_type"`
	ETA                      string  `json:"eta"`
	Draught                  string  `json:"draught"`
	IMO                      string  `json:"imo"`
	CourseOverGround         string  `json:"course_over_ground"`
	PositionAccuracy         string  `json:"position_accuracy"`
	SpeedOverGround          string  `json:"speed_over_ground"`
	NavigationStatus         string  `json:"navigation_status"`
}

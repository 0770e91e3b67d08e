package graph

// Arc is a directed edge to To. Name is the display name of the trail the arc belongs to
type Arc struct {
	To     NodeId
	Length float64
	Name   string
}

func MakeArc(to NodeId, length float64, name string) Arc {
	return Arc{To: to, Length: length, Name: name}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Cost() float64 {
	return a.Length
}

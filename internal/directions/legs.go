package directions

// TransformLeg normalizes the travel mode of a leg and of each of its
// steps. All other leg fields are kept as they are.
func TransformLeg(leg RawLeg) Leg {
	out := Leg{
		TravelMode: firstString(leg, DefaultLegTravelMode, "travelMode", "travel_mode"),
		Fields:     leg,
	}

	if steps, ok := objectList(leg, "steps"); ok {
		out.Steps = make([]Step, 0, len(steps))
		for _, s := range steps {
			out.Steps = append(out.Steps, TransformStep(s))
		}
	}

	return out
}

// TransformStep normalizes the travel mode of a step. Transit details and
// walking instructions pass through unchanged.
func TransformStep(step RawStep) Step {
	return Step{
		TravelMode: firstString(step, DefaultStepTravelMode, "travelMode", "travel_mode"),
		Fields:     step,
	}
}

func transformLegs(route RawRoute) []Leg {
	legs, _ := objectList(route, "legs")
	out := make([]Leg, 0, len(legs))
	for _, l := range legs {
		out = append(out, TransformLeg(l))
	}
	return out
}

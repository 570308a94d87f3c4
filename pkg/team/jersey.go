package team

import "sort"

//SplitByBrightness splits the players of one frame into two teams by the mean brightness of their jersey:
//players darker than the median go to Team2, the rest (median included) to Team1.
func SplitByBrightness(means map[int]float64) map[int]int {
	if len(means) == 0 {
		return nil
	}

	values := make([]float64, 0, len(means))
	for _, v := range means {
		values = append(values, v)
	}
	sort.Float64s(values)
	median := values[len(values)/2]

	teams := make(map[int]int, len(means))
	for id, avg := range means {
		if avg < median {
			teams[id] = Team2
		} else {
			teams[id] = Team1
		}
	}

	return teams
}

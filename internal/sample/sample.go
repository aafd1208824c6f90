package sample

import "github.com/leandrodaf/midiscore/sdk/score"

// Arpeggio is a C7 chord spelled one crotchet at a time.
var Arpeggio = []score.Tuple3{
	{Pitch: 48, Duration: 4, Position: 0},  // C3
	{Pitch: 52, Duration: 4, Position: 4},  // E3
	{Pitch: 55, Duration: 4, Position: 8},  // G3
	{Pitch: 58, Duration: 4, Position: 12}, // Bb3
}

// Chord holds the same C7 as whole notes, topped with C4.
var Chord = []score.Tuple3{
	{Pitch: 48, Duration: 16, Position: 16},
	{Pitch: 52, Duration: 16, Position: 16},
	{Pitch: 55, Duration: 16, Position: 16},
	{Pitch: 58, Duration: 16, Position: 16},
	{Pitch: 60, Duration: 16, Position: 16},
}

// Percussion repeats the chord's keys on the drum channel one bar later.
var Percussion = []score.Tuple4{
	{Pitch: 48, Duration: 16, Position: 32, Channel: score.PercussionChannel},
	{Pitch: 52, Duration: 16, Position: 32, Channel: score.PercussionChannel},
	{Pitch: 55, Duration: 16, Position: 32, Channel: score.PercussionChannel},
	{Pitch: 58, Duration: 16, Position: 32, Channel: score.PercussionChannel},
	{Pitch: 60, Duration: 16, Position: 32, Channel: score.PercussionChannel},
}

// Score returns a fresh three-bar demo score.
func Score() *score.Score {
	s := score.From(Arpeggio)
	score.ExtendFrom(s, Chord)
	return score.ExtendFrom(s, Percussion)
}

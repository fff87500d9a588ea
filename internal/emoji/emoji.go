package emoji

import (
	"math"
)

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	HalfEclipse = "🌓"

	ThirdEclipse = "🌒"
	FullEclipse  = "🌑"
	Comet        = "🪐" // ☄

	FirstEclipse = "🌔"
	FullMoon     = "🌕"
	SunFace      = "🌞"
	Star         = "🌟"

	Zero = "🥜" //🕸
	Down = "🐞" //// 🥀
	Up   = "🦠" //

	DotSnow  = "❄"
	DotFire  = "🔥"
	DotWater = "💧"

	NoValue = "‍☠️"
)

// MapToSign maps the given float value according to it's sign.
func MapToSign(f float64) string {
	emo := DotSnow
	if f > 0 {
		emo = DotFire
	} else if f < 0 {
		emo = DotWater
	}
	return emo
}

// MapToSentiment maps the direction of the forecast from the last known value.
func MapToSentiment(last, next float64) string {
	emo := Zero
	if next > last {
		emo = Up
	} else if next < last {
		emo = Down
	}
	return emo
}

var accuracy = []struct {
	limit float64
	emoji string
}{
	{0.001, Star},
	{0.005, SunFace},
	{0.01, FullMoon},
	{0.02, FirstEclipse},
	{0.05, HalfEclipse},
	{0.1, ThirdEclipse},
	{0.25, FullEclipse},
}

// MapAccuracy maps the relative error of a forecast to an emoji,
// from a star for a near perfect forecast down to a comet.
func MapAccuracy(relative float64, ok bool) string {
	if !ok || math.IsNaN(relative) {
		return NoValue
	}
	r := math.Abs(relative)
	for _, a := range accuracy {
		if r < a.limit {
			return a.emoji
		}
	}
	return Comet
}

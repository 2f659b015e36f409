package islands

// Theme is the render palette and atmosphere of a dimension. Colors are
// hex strings so the render layer can map them to the nearest terminal
// color without this package depending on any UI types.
type Theme struct {
	ID               Dimension
	SkyColor         string
	GroundColor      string
	FogColor         string
	FogDensity       float64
	AmbientIntensity float64
	ParticleColor    string
}

// Themes maps every dimension to its palette.
var Themes = map[Dimension]Theme{
	Home: {
		ID:               Home,
		SkyColor:         "#FFF4E6",
		GroundColor:      "#2F2A38",
		FogColor:         "#FF6B6B",
		FogDensity:       0.015,
		AmbientIntensity: 0.9,
		ParticleColor:    "#D4FF00",
	},
	Candy: {
		ID:               Candy,
		SkyColor:         "#FEE440",
		GroundColor:      "#1A1A1A",
		FogColor:         "#F15BB5",
		FogDensity:       0.015,
		AmbientIntensity: 0.8,
		ParticleColor:    "#00F5D4",
	},
	Space: {
		ID:               Space,
		SkyColor:         "#F2F9F1",
		GroundColor:      "#101010",
		FogColor:         "#000000",
		FogDensity:       0.02,
		AmbientIntensity: 0.4,
		ParticleColor:    "#FF0054",
	},
	Ocean: {
		ID:               Ocean,
		SkyColor:         "#D4FF00",
		GroundColor:      "#0A2239",
		FogColor:         "#1D8A99",
		FogDensity:       0.02,
		AmbientIntensity: 0.6,
		ParticleColor:    "#FF3366",
	},
	Volcano: {
		ID:               Volcano,
		SkyColor:         "#FF3366",
		GroundColor:      "#111111",
		FogColor:         "#FF9F1C",
		FogDensity:       0.025,
		AmbientIntensity: 0.7,
		ParticleColor:    "#FFBF00",
	},
	Cloud: {
		ID:               Cloud,
		SkyColor:         "#111111",
		GroundColor:      "#E8ECEF",
		FogColor:         "#FFFFFF",
		FogDensity:       0.01,
		AmbientIntensity: 0.9,
		ParticleColor:    "#D4FF00",
	},
}

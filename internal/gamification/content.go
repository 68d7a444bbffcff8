package gamification

// CharacterBand names the figure a user embodies once their completion
// count reaches Threshold. Bands are content: tweaking names or boundaries
// must not require touching the engine.
type CharacterBand struct {
	Threshold   int
	Title       string
	Description string
}

// Bands in ascending threshold order. The lookup picks the last band whose
// threshold the completion count has reached.
var characterBands = []CharacterBand{
	{0, "Aprendiz Emocional", "Estás dando tus primeros pasos en el camino de la inteligencia emocional."},
	{3, "Explorador de Emociones", "Ya reconoces tus emociones y empiezas a navegarlas con curiosidad."},
	{6, "Aventurero del Corazón", "Te atreves a practicar nuevas formas de sentir y expresarte."},
	{10, "Guardián del Equilibrio", "Mantienes la calma y ayudas a otros a encontrar la suya."},
	{15, "Sabio de las Emociones", "Tu constancia te ha dado una comprensión profunda de ti mismo/a."},
	{25, "Gran Maestro Emocional", "Dominas las cinco competencias y las vives a diario."},
	{40, "Leyenda de la Inteligencia Emocional", "Tu camino inspira a quienes apenas comienzan el suyo."},
}

// Named milestones on the every-5-completions ladder.
var milestoneNames = map[int]string{
	5:  "Explorador Avanzado",
	10: "Maestro del Equilibrio",
	15: "Sabio Emocional",
	25: "Gran Maestro",
}

const (
	// XPPerLevel completions advance the character one level.
	XPPerLevel = 3
	// MilestoneStep spaces the milestone ladder.
	MilestoneStep = 5
)

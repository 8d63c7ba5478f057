package dedup

// Rule labels and per-record explanations, verbatim from the reports the
// FAED analysts work with. Labels identify the resolving rule; details
// distinguish the kept rationale from the removed rationale inside a group.

const (
	RuleSingleton   = "Signalisation unique (pas de doublon)"
	DetailSingleton = "Cette signalisation est conservée car elle n'a pas de doublon."
)

const (
	RuleExclusionPN   = "Exclusion automatique des IDPP commençant par PN"
	DetailExclusionPN = "Cette signalisation est automatiquement exclue car son identifiant GASPARD commence par 'PN'."
)

const (
	RuleTri1          = "Tri 1: Correspondance exacte entre numéro de signalisation et numéro de personne"
	DetailTri1Kept    = "La signalisation est conservée car son numéro de signalisation est identique à son numéro de personne."
	DetailTri1Removed = "Une autre signalisation a créé le numéro de personne."
)

const (
	RuleTri2          = "Tri 2: Cohérence entre numéro de procédure (UNA) et identifiant GASPARD (IDPP)"
	DetailTri2Kept    = "La signalisation est conservée car son numéro de procédure est inclus dans son identifiant GASPARD."
	DetailTri2Removed = "L'UNA ne correspond pas à l'IDPP."
)

const (
	RuleTri31          = "Tri 3.1: Conservation de la signalisation la plus ancienne"
	detailTri31KeptFmt = "La signalisation est conservée car c'est la plus ancienne (date de création: %s)."
	DetailTri31Removed = "La signalisation est plus récente que l'autre."
)

const (
	RuleTri32          = "Tri 3.2: Conservation des signalisations avec photo"
	DetailTri32Kept    = "La signalisation est conservée car elle possède une photo."
	DetailTri32Removed = "La signalisation n'a pas de photo comparée à l'autre."
)

const (
	RuleTri33          = "Tri 3.3: Conservation de la signalisation avec le plus petit numéro"
	detailTri33KeptFmt = "La signalisation est conservée car elle a le plus petit numéro de signalisation (%s)."
	DetailTri33Removed = "Doublons parfaits, suppression par numéro de signalisation plus récent."
)

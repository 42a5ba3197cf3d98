package models

// Word is one lexical entry in the dictionary store. The column set mirrors
// the words table shipped inside the iOS app, so renames here are breaking.
type Word struct {
	ID                        int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Gloss                     string `gorm:"column:gloss"`
	Minor                     string `gorm:"column:minor"`
	Maori                     string `gorm:"column:maori"`
	Picture                   string `gorm:"column:picture"`
	Video                     string `gorm:"column:video"`
	Handshape                 string `gorm:"column:handshape"`
	Location                  string `gorm:"column:location"`
	LocationIdentifier        string `gorm:"column:location_identifier"`
	Target                    string `gorm:"column:target"`
	AgeGroups                 string `gorm:"column:age_groups"`
	ContainsNumbers           string `gorm:"column:contains_numbers"`
	Hint                      string `gorm:"column:hint"`
	InflectionMannerAndDegree string `gorm:"column:inflection_manner_and_degree"`
	InflectionPlural          string `gorm:"column:inflection_plural"`
	InflectionTemporal        string `gorm:"column:inflection_temporal"`
	IsDirectional             string `gorm:"column:is_directional"`
	IsFingerspelling          string `gorm:"column:is_fingerspelling"`
	IsLocatable               string `gorm:"column:is_locatable"`
	OneOrTwoHanded            string `gorm:"column:one_or_two_handed"`
	RelatedTo                 string `gorm:"column:related_to"`
	Usage                     string `gorm:"column:usage"`
	UsageNotes                string `gorm:"column:usage_notes"`
	WordClasses               string `gorm:"column:word_classes"`
	GlossNormalized           string `gorm:"column:gloss_normalized"`
	MinorNormalized           string `gorm:"column:minor_normalized"`
	MaoriNormalized           string `gorm:"column:maori_normalized"`
}

// TableName overrides the table name used by GORM.
func (Word) TableName() string {
	return "words"
}

// Video is one row of the asset ledger. A row may reference a word id that no
// longer exists; the pruner reconciles those after each import.
type Video struct {
	WordID       int64  `gorm:"column:word_id;uniqueIndex:idx_word_videos"`
	VideoType    string `gorm:"column:video_type;uniqueIndex:idx_word_videos"`
	Filename     string `gorm:"column:filename;uniqueIndex:idx_word_videos"`
	URL          string `gorm:"column:url"`
	DisplayOrder string `gorm:"column:display_order"`
}

// TableName overrides the table name used by GORM.
func (Video) TableName() string {
	return "videos"
}

// Example is one usage example sentence belonging to a word. The video
// reference is back-filled from the asset export after the word import.
type Example struct {
	WordID       int64  `gorm:"column:word_id;uniqueIndex:idx_word_examples"`
	DisplayOrder int    `gorm:"column:display_order;uniqueIndex:idx_word_examples"`
	Sentence     string `gorm:"column:sentence"`
	Translation  string `gorm:"column:translation"`
	Video        string `gorm:"column:video"`
}

// TableName overrides the table name used by GORM.
func (Example) TableName() string {
	return "examples"
}

// Topic is a controlled-vocabulary tag derived from the semantic_field column.
type Topic struct {
	Name string `gorm:"column:name;uniqueIndex:idx_topics_name"`
}

// TableName overrides the table name used by GORM.
func (Topic) TableName() string {
	return "topics"
}

// WordTopic joins words to topics many-to-many.
type WordTopic struct {
	WordID    int64  `gorm:"column:word_id;uniqueIndex:idx_word_topics"`
	TopicName string `gorm:"column:topic_name;uniqueIndex:idx_word_topics"`
}

// TableName overrides the table name used by GORM.
func (WordTopic) TableName() string {
	return "word_topics"
}

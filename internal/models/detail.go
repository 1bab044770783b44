package models

type Timeline struct {
	ID          *int    `json:"id" validate:"required"`
	Time        *string `json:"time,omitempty" validate:"omitempty,max=50"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

type Astronaut struct {
	ID     *int    `json:"id" validate:"required"`
	Name   *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Role   *string `json:"role,omitempty" validate:"omitempty,max=255"`
	Agency *string `json:"agency,omitempty" validate:"omitempty,max=255"`
	Bio    *string `json:"bio,omitempty"`
	Image  *Image  `json:"image,omitempty"`
}

type Webcast struct {
	ID                 *int    `json:"id" validate:"required"`
	Title              *string `json:"title,omitempty" validate:"omitempty,max=255"`
	YoutubeVideoID     *string `json:"youtubeVideoId,omitempty" validate:"omitempty,max=255"`
	StreamingVideoType *string `json:"streamingVideoType,omitempty" validate:"omitempty,max=100"`
	URL                *string `json:"url,omitempty" validate:"omitempty,url"`
	IsLive             bool    `json:"isLive"`
}

type Paragraph struct {
	ID      *int    `json:"id" validate:"required"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string `json:"content,omitempty"`
}

type CarouselItem struct {
	ID      *int    `json:"id" validate:"required"`
	Caption *string `json:"caption,omitempty" validate:"omitempty,max=500"`
	Image   *Image  `json:"image,omitempty"`
}

// LaunchDetail - запуск с повествовательной частью страницы миссии
type LaunchDetail struct {
	Launch
	Timelines  []Timeline     `json:"timelines,omitempty" validate:"omitempty,dive"`
	Astronauts []Astronaut    `json:"astronauts,omitempty" validate:"omitempty,dive"`
	Webcasts   []Webcast      `json:"webcasts,omitempty" validate:"omitempty,dive"`
	Paragraphs []Paragraph    `json:"paragraphs,omitempty" validate:"omitempty,dive"`
	Carousel   []CarouselItem `json:"carousel,omitempty" validate:"omitempty,dive"`
}

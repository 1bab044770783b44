package models

import "encoding/json"

// Stats - сводная статистика провайдера
type Stats struct {
	ID             *int   `json:"id" validate:"required"`
	DocumentID     string `json:"documentId" validate:"required,max=255"`
	TotalLaunches  *int   `json:"totalLaunches" validate:"required"`
	TotalLandings  *int   `json:"totalLandings" validate:"required"`
	TotalReflights *int   `json:"totalReflights" validate:"required"`
}

type ImageFormat struct {
	Ext    string   `json:"ext" validate:"required,max=10"`
	URL    string   `json:"url" validate:"required,url"`
	Hash   string   `json:"hash" validate:"required,max=255"`
	Mime   string   `json:"mime" validate:"required,max=50"`
	Name   string   `json:"name" validate:"required,max=255"`
	Path   *string  `json:"path,omitempty" validate:"omitempty,max=500"`
	Size   *float64 `json:"size" validate:"required"`
	Width  *int     `json:"width" validate:"required"`
	Height *int     `json:"height" validate:"required"`
}

type ImageFormats struct {
	Large     *ImageFormat `json:"large,omitempty"`
	Small     *ImageFormat `json:"small,omitempty"`
	Medium    *ImageFormat `json:"medium,omitempty"`
	Thumbnail *ImageFormat `json:"thumbnail,omitempty"`
}

// Image - медиафайл, прикреплённый к запуску
type Image struct {
	ID               *int            `json:"id" validate:"required"`
	Name             string          `json:"name" validate:"required,max=255"`
	AlternativeText  *string         `json:"alternativeText,omitempty" validate:"omitempty,max=500"`
	Caption          *string         `json:"caption,omitempty" validate:"omitempty,max=500"`
	Width            *int            `json:"width" validate:"required"`
	Height           *int            `json:"height" validate:"required"`
	Formats          *ImageFormats   `json:"formats,omitempty"`
	Hash             string          `json:"hash" validate:"required,max=255"`
	Ext              string          `json:"ext" validate:"required,max=10"`
	Mime             string          `json:"mime" validate:"required,max=50"`
	Size             *float64        `json:"size" validate:"required"`
	URL              string          `json:"url" validate:"required,url"`
	PreviewURL       *string         `json:"previewUrl,omitempty" validate:"omitempty,url"`
	Provider         *string         `json:"provider,omitempty" validate:"omitempty,max=100"`
	ProviderMetadata json.RawMessage `json:"provider_metadata,omitempty"`
	FolderPath       *string         `json:"folderPath,omitempty" validate:"omitempty,max=500"`
	CreatedAt        string          `json:"createdAt" validate:"required,isodatetime"`
	UpdatedAt        string          `json:"updatedAt" validate:"required,isodatetime"`
	DocumentID       string          `json:"documentId" validate:"required,max=255"`
	Locale           *string         `json:"locale,omitempty" validate:"omitempty,max=10"`
	PublishedAt      *string         `json:"publishedAt,omitempty" validate:"omitempty,isodatetime"`
}

// Launch - прошедший запуск
type Launch struct {
	ID                            *int            `json:"id" validate:"required"`
	DocumentID                    string          `json:"documentId" validate:"required,max=255"`
	CorrelationID                 *string         `json:"correlationId,omitempty" validate:"omitempty,max=255"`
	EndDate                       *string         `json:"endDate,omitempty" validate:"omitempty,isodate"`
	EndTime                       *string         `json:"endTime,omitempty" validate:"omitempty,isotime"`
	Title                         string          `json:"title" validate:"required,max=255"`
	Subtitle                      *string         `json:"subtitle,omitempty" validate:"omitempty,max=255"`
	QuickDetail                   *string         `json:"quickDetail,omitempty" validate:"omitempty,max=500"`
	Link                          string          `json:"link" validate:"required,max=255"`
	YoutubeVideoID                *string         `json:"youtubeVideoId,omitempty" validate:"omitempty,max=255"`
	StreamingVideoType            *string         `json:"streamingVideoType,omitempty" validate:"omitempty,max=100"`
	CallToAction                  string          `json:"callToAction" validate:"required,max=50"`
	MissionStatus                 string          `json:"missionStatus" validate:"required,max=50"`
	Vehicle                       string          `json:"vehicle" validate:"required,max=100"`
	ReturnSite                    *string         `json:"returnSite,omitempty" validate:"omitempty,max=100"`
	LaunchSite                    string          `json:"launchSite" validate:"required,max=100"`
	IsOngoing                     *bool           `json:"isOngoing" validate:"required"`
	LaunchDate                    string          `json:"launchDate" validate:"required,isodate"`
	LaunchTime                    string          `json:"launchTime" validate:"required,isotime"`
	MissionType                   string          `json:"missionType" validate:"required,max=100"`
	DirectToCell                  *bool           `json:"directToCell" validate:"required"`
	IsLive                        *bool           `json:"isLive" validate:"required"`
	ReturnDateTime                *string         `json:"returnDateTime,omitempty" validate:"omitempty,isodatetime"`
	ShowLaunchTimeInsteadOfWindow string          `json:"showLaunchTimeInsteadOfWindow" validate:"required,max=10"`
	ImageDesktop                  *Image          `json:"imageDesktop,omitempty"`
	ImageMobile                   *Image          `json:"imageMobile,omitempty"`
	OngoingMissionImageDesktop    *Image          `json:"ongoingMissionImageDesktop,omitempty"`
	OngoingMissionImageMobile     *Image          `json:"ongoingMissionImageMobile,omitempty"`
	VideoDesktop                  json.RawMessage `json:"videoDesktop,omitempty"`
	VideoMobile                   json.RawMessage `json:"videoMobile,omitempty"`
}

// DateTime возвращает дату и время запуска для сортировки
func (l Launch) DateTime() (string, string) {
	return l.LaunchDate, l.LaunchTime
}

// UpcomingLaunch - запуск из расписания. Обязательны только идентификаторы,
// заголовок и статус миссии.
type UpcomingLaunch struct {
	ID                            *int            `json:"id" validate:"required"`
	DocumentID                    string          `json:"documentId" validate:"required,max=255"`
	CorrelationID                 *string         `json:"correlationId,omitempty" validate:"omitempty,max=255"`
	EndDate                       *string         `json:"endDate,omitempty" validate:"omitempty,isodate"`
	EndTime                       *string         `json:"endTime,omitempty" validate:"omitempty,isotime"`
	Title                         string          `json:"title" validate:"required,max=255"`
	Subtitle                      *string         `json:"subtitle,omitempty" validate:"omitempty,max=255"`
	QuickDetail                   *string         `json:"quickDetail,omitempty" validate:"omitempty,max=500"`
	Link                          *string         `json:"link,omitempty" validate:"omitempty,max=255"`
	YoutubeVideoID                *string         `json:"youtubeVideoId,omitempty" validate:"omitempty,max=255"`
	StreamingVideoType            *string         `json:"streamingVideoType,omitempty" validate:"omitempty,max=100"`
	CallToAction                  *string         `json:"callToAction,omitempty" validate:"omitempty,max=100"`
	MissionStatus                 string          `json:"missionStatus" validate:"required,max=50"`
	Vehicle                       *string         `json:"vehicle,omitempty" validate:"omitempty,max=100"`
	ReturnSite                    *string         `json:"returnSite,omitempty" validate:"omitempty,max=255"`
	LaunchSite                    *string         `json:"launchSite,omitempty" validate:"omitempty,max=255"`
	IsOngoing                     bool            `json:"isOngoing"`
	LaunchDate                    *string         `json:"launchDate,omitempty" validate:"omitempty,isodate"`
	LaunchTime                    *string         `json:"launchTime,omitempty" validate:"omitempty,isotime"`
	MissionType                   *string         `json:"missionType,omitempty" validate:"omitempty,max=100"`
	DirectToCell                  bool            `json:"directToCell"`
	IsLive                        bool            `json:"isLive"`
	ReturnDateTime                *string         `json:"returnDateTime,omitempty" validate:"omitempty,isodatetime"`
	ShowLaunchTimeInsteadOfWindow *string         `json:"showLaunchTimeInsteadOfWindow,omitempty" validate:"omitempty,max=10"`
	ImageDesktop                  *Image          `json:"imageDesktop,omitempty"`
	ImageMobile                   *Image          `json:"imageMobile,omitempty"`
	OngoingMissionImageDesktop    *Image          `json:"ongoingMissionImageDesktop,omitempty"`
	OngoingMissionImageMobile     *Image          `json:"ongoingMissionImageMobile,omitempty"`
	VideoDesktop                  json.RawMessage `json:"videoDesktop,omitempty"`
	VideoMobile                   json.RawMessage `json:"videoMobile,omitempty"`
}

// UpcomingLaunches - ответ /upcoming/ со счётчиками по прошедшим проверку записям
type UpcomingLaunches struct {
	TotalCount    int              `json:"total_count"`
	UpcomingCount int              `json:"upcoming_count"`
	StarlinkCount int              `json:"starlink_count"`
	Launches      []UpcomingLaunch `json:"launches"`
}

// LaunchList - ответ /launches/
type LaunchList struct {
	TotalLaunches int      `json:"total_launches"`
	Launches      []Launch `json:"launches"`
}

// UpcomingSummary - сводка по полному набору предстоящих запусков
type UpcomingSummary struct {
	TotalLaunches    int            `json:"total_launches"`
	UpcomingLaunches int            `json:"upcoming_launches"`
	StarlinkMissions int            `json:"starlink_missions"`
	LiveLaunches     int            `json:"live_launches"`
	OngoingLaunches  int            `json:"ongoing_launches"`
	Vehicles         map[string]int `json:"vehicles"`
	LaunchSites      map[string]int `json:"launch_sites"`
	MissionStatuses  map[string]int `json:"mission_statuses"`
	MissionTypes     map[string]int `json:"mission_types"`
}

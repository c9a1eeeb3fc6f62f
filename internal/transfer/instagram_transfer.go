package transfer

import "time"

type InstagramToken struct {
	UserID         int       `json:"user_id"`
	AccessToken    string    `json:"access_token"`
	LongLivedToken string    `json:"long_lived_token"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type InstagramUserInfo struct {
	UserID         string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture_url"`
}

// InstagramMedia is one media object returned by the Graph media edge.
type InstagramMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`         // IMAGE, VIDEO, CAROUSEL_ALBUM
	MediaProduct string `json:"media_product_type"` // FEED, REELS, STORY
	Timestamp    string `json:"timestamp"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comments_count"`
}

type InstagramMediaList struct {
	Data   []InstagramMedia `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// InstagramInsights is the flattened metric set pulled per media from
// the insights edge.
type InstagramInsights struct {
	Reach  int `json:"reach"`
	Shares int `json:"shares"`
}

type InstagramInsightsResponse struct {
	Data []struct {
		Name   string `json:"name"`
		Values []struct {
			Value int `json:"value"`
		} `json:"values"`
	} `json:"data"`
}

type InstagramErrorResponse struct {
	Error struct {
		Message        string `json:"message"`
		Type           string `json:"type"`
		Code           int    `json:"code"`
		ErrorSubcode   int    `json:"error_subcode"`
		IsTransient    bool   `json:"is_transient"`
		ErrorUserTitle string `json:"error_user_title"`
		ErrorUserMsg   string `json:"error_user_msg"`
		FbtraceID      string `json:"fbtrace_id"`
	} `json:"error"`
}

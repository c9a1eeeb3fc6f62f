package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/socialpulse/insights-api/configs"
	"github.com/socialpulse/insights-api/internal/models"
	"github.com/socialpulse/insights-api/internal/repository"
	"github.com/socialpulse/insights-api/internal/transfer"
	"github.com/socialpulse/insights-api/pkg/utils"
)

type InstagramService interface {
	InstagramCallback(ctx context.Context, code string, userID int64) (err error)
	RefreshInstagramToken(ctx context.Context, userID int64, refreshToken string) error
	SyncAccountMetrics(ctx context.Context, account *models.SocialAccount) error
}

type instagramService struct {
	cfg config.Config
	sa  repository.SocialAccountRepository
	mr  repository.MetricRecordRepository
}

func NewInstagramService(
	cfg config.Config,
	sa repository.SocialAccountRepository,
	mr repository.MetricRecordRepository) InstagramService {
	return &instagramService{
		cfg: cfg,
		sa:  sa,
		mr:  mr,
	}
}

func (ig *instagramService) InstagramCallback(ctx context.Context, code string, userID int64) (err error) {
	if code == "" {
		err = errors.New("code or state is empty")
		slog.Info(err.Error())
		return err
	}

	if userID == 0 {
		err = errors.New("User not found")
		slog.Info(err.Error())
		return err
	}

	token, err := ig.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return err
	}

	userInfo, err := ig.GetInstagramUserInfo(token.LongLivedToken)
	if err != nil {
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.LongLivedToken), []byte(ig.cfg.SecretKey))
	if err != nil {
		return err
	}

	accountInfo := &models.SocialAccount{
		UserID:          userID,
		Platform:        "instagram",
		AccountID:       userInfo.UserID,
		AccountName:     userInfo.Name,
		AccountUsername: userInfo.Username,
		ProfilePicture:  userInfo.ProfilePicture,
		AccessToken:     encryptedAccessToken,
		RefreshToken:    encryptedAccessToken,
		TokenExpiresAt:  token.ExpiresAt,
	}

	_, err = ig.sa.Create(ctx, accountInfo)
	if err != nil {
		return err
	}

	return nil
}

func (ig *instagramService) getShortLivedToken(code string) (*transfer.InstagramToken, error) {
	data := url.Values{}
	data.Set("client_id", ig.cfg.InstagramClientID)
	data.Set("client_secret", ig.cfg.InstagramClientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", ig.cfg.InstagramRedirectURI)
	data.Set("code", code)

	resp, err := http.Post(
		"https://api.instagram.com/oauth/access_token",
		"application/x-www-form-urlencoded",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to get short-lived token: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		AccessToken string `json:"access_token"`
		UserID      int    `json:"user_id"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode token response: %v", err)
	}

	token := &transfer.InstagramToken{
		UserID:      result.UserID,
		AccessToken: result.AccessToken,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	return token, nil
}

func (ig *instagramService) getLongLivedToken(shortLivedToken string) (string, time.Time, error) {
	url := fmt.Sprintf(
		"https://graph.instagram.com/access_token?grant_type=ig_exchange_token&client_secret=%s&access_token=%s",
		ig.cfg.InstagramClientSecret,
		shortLivedToken,
	)

	resp, err := http.Get(url)
	if err != nil {
		slog.Info(err.Error())
		return "", time.Time{}, fmt.Errorf("failed to get long-lived token: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", time.Time{}, fmt.Errorf("error response from Instagram: %s (status code: %d)", body, resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return "", time.Time{}, fmt.Errorf("failed to decode long-lived token response: %v", err)
	}

	return result.AccessToken, time.Now().Add(time.Second * time.Duration(result.ExpiresIn)), nil
}

func (ig *instagramService) ExchangeCodeForToken(ctx context.Context, code string) (*transfer.InstagramToken, error) {
	shortLivedToken, err := ig.getShortLivedToken(code)
	if err != nil {
		return nil, fmt.Errorf("failed to get short-lived token: %v", err)
	}

	longLivedToken, expiresAt, err := ig.getLongLivedToken(shortLivedToken.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get long-lived token: %v", err)
	}

	token := &transfer.InstagramToken{
		UserID:         shortLivedToken.UserID,
		AccessToken:    shortLivedToken.AccessToken,
		LongLivedToken: longLivedToken,
		ExpiresAt:      expiresAt,
	}

	return token, nil
}

func (ig *instagramService) GetInstagramUserInfo(accessToken string) (*transfer.InstagramUserInfo, error) {
	url := fmt.Sprintf("https://graph.instagram.com/me?fields=id,username,name,profile_picture_url&access_token=%s", accessToken)

	resp, err := http.Get(url)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to get user info: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("error response from Instagram: %s (status code: %d)", body, resp.StatusCode)
	}

	var userInfo transfer.InstagramUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode user info: %v", err)
	}

	return &userInfo, nil
}

func (ig *instagramService) RefreshInstagramToken(ctx context.Context, userID int64, refreshToken string) error {
	decryptedToken, err := utils.Decrypt(refreshToken, []byte(ig.cfg.SecretKey))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://graph.instagram.com/refresh_access_token?grant_type=ig_refresh_token&access_token=%s", decryptedToken)

	resp, err := http.Get(url)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("failed to refresh token: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("failed to decode refresh response: %v", err)
	}

	encryptedToken, err := utils.Encrypt([]byte(result.AccessToken), []byte(ig.cfg.SecretKey))
	if err != nil {
		return err
	}

	account := &models.SocialAccount{
		AccessToken:    encryptedToken,
		RefreshToken:   encryptedToken,
		TokenExpiresAt: GetExpiresAt(result.ExpiresIn),
	}

	return ig.sa.SetToken(ctx, userID, refreshToken, account)
}

// SyncAccountMetrics pulls recent media and their insights from the
// Graph API and upserts one metric record per media. Re-running the
// sync refreshes counts instead of duplicating records.
func (ig *instagramService) SyncAccountMetrics(ctx context.Context, account *models.SocialAccount) error {
	if account == nil {
		err := errors.New("social account is nil")
		slog.Info(err.Error())
		return err
	}

	accessToken, err := utils.Decrypt(account.AccessToken, []byte(ig.cfg.SecretKey))
	if err != nil {
		return err
	}

	media, err := ig.listRecentMedia(account.AccountID, accessToken)
	if err != nil {
		return err
	}

	for _, m := range media {
		publishedAt, err := time.Parse("2006-01-02T15:04:05-0700", m.Timestamp)
		if err != nil {
			slog.Info(err.Error())
			continue
		}

		metrics, err := ig.getMediaInsights(m.ID, accessToken)
		if err != nil {
			slog.Info(err.Error())
			continue
		}

		mediaID := m.ID
		timeOfDay := publishedAt.UTC().Format("15:04")
		category := mediaCategory(m.MediaProduct)

		record := models.MetricRecord{
			UserID:          account.UserID,
			PlatformMediaID: &mediaID,
			Likes:           m.LikeCount,
			Comments:        m.CommentCount,
			Shares:          metrics.Shares,
			Reach:           metrics.Reach,
			PublishedAt:     publishedAt.UTC(),
			PublishedTime:   &timeOfDay,
			Hashtags:        extractHashtags(m.Caption),
			Category:        &category,
			Source:          models.RecordSourceInstagram,
		}

		if err := ig.mr.Upsert(ctx, &record); err != nil {
			return fmt.Errorf("error saving metrics for media %s: %w", m.ID, err)
		}
	}

	return nil
}

func (ig *instagramService) listRecentMedia(accountID, accessToken string) ([]transfer.InstagramMedia, error) {
	url := fmt.Sprintf(
		"https://graph.instagram.com/%s/media?fields=id,caption,media_type,media_product_type,timestamp,like_count,comments_count&limit=50&access_token=%s",
		accountID, accessToken,
	)

	resp, err := http.Get(url)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to list media: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("error response from Instagram: %s (status code: %d)", body, resp.StatusCode)
	}

	var list transfer.InstagramMediaList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode media list: %v", err)
	}

	return list.Data, nil
}

func (ig *instagramService) getMediaInsights(mediaID, accessToken string) (*transfer.InstagramInsights, error) {
	url := fmt.Sprintf(
		"https://graph.instagram.com/%s/insights?metric=reach,shares&access_token=%s",
		mediaID, accessToken,
	)

	resp, err := http.Get(url)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to get media insights: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("error response from Instagram: %s (status code: %d)", body, resp.StatusCode)
	}

	var raw transfer.InstagramInsightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to decode insights response: %v", err)
	}

	var insights transfer.InstagramInsights
	for _, metric := range raw.Data {
		if len(metric.Values) == 0 {
			continue
		}
		switch metric.Name {
		case "reach":
			insights.Reach = metric.Values[0].Value
		case "shares":
			insights.Shares = metric.Values[0].Value
		}
	}

	return &insights, nil
}

func mediaCategory(mediaProduct string) string {
	switch mediaProduct {
	case "REELS":
		return models.CategoryReel
	case "STORY":
		return models.CategoryStory
	default:
		return models.CategoryFeed
	}
}

func extractHashtags(caption string) []string {
	var tags []string
	for _, word := range strings.Fields(caption) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, strings.TrimPrefix(word, "#"))
		}
	}
	return tags
}

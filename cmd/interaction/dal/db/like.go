package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetLikeWithTx 事务内加行锁读取, 没有记录时返回 nil, nil
func GetLikeWithTx(tx *gorm.DB, userId, videoId string) (*model.Like, error) {
	return findLike(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userId, videoId)
}

func findLike(tx *gorm.DB, userId, videoId string) (*model.Like, error) {
	var likes []*model.Like
	if err := tx.Where("user_id = ? AND video_id = ?", userId, videoId).Limit(1).Find(&likes).Error; err != nil {
		return nil, errors.Wrapf(err, "GetLike failed, userId: %s, videoId: %s", userId, videoId)
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return likes[0], nil
}

func CreateLikeWithTx(tx *gorm.DB, like *model.Like) error {
	if err := tx.Create(like).Error; err != nil {
		return errors.Wrapf(err, "CreateLike failed,err: %v", err)
	}
	return nil
}

// UpdateLikeWithTx 行已被别人删掉时返回 gorm.ErrRecordNotFound
func UpdateLikeWithTx(tx *gorm.DB, likeId string, isLike bool) error {
	result := tx.Model(&model.Like{}).Where("id = ?", likeId).Update("is_like", isLike)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "UpdateLike failed, likeId: %s", likeId)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "UpdateLike failed, likeId: %s", likeId)
	}
	return nil
}

// DeleteLikeWithTx 行已被别人删掉时返回 gorm.ErrRecordNotFound
func DeleteLikeWithTx(tx *gorm.DB, likeId string) error {
	result := tx.Where("id = ?", likeId).Delete(&model.Like{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteLike failed, likeId: %s", likeId)
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "DeleteLike failed, likeId: %s", likeId)
	}
	return nil
}

// CountReactionsWithTx 分别统计点赞和点踩的行数
func CountReactionsWithTx(tx *gorm.DB, videoId string) (likes, dislikes int64, err error) {
	if err = tx.Model(&model.Like{}).Where("video_id = ? AND is_like = ?", videoId, true).Count(&likes).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "count likes failed, videoId: %s", videoId)
	}
	if err = tx.Model(&model.Like{}).Where("video_id = ? AND is_like = ?", videoId, false).Count(&dislikes).Error; err != nil {
		return 0, 0, errors.Wrapf(err, "count dislikes failed, videoId: %s", videoId)
	}
	return likes, dislikes, nil
}

func CountReactions(ctx context.Context, videoId string) (likes, dislikes int64, err error) {
	return CountReactionsWithTx(DB.WithContext(ctx), videoId)
}

// GetUserReaction 返回 nil 表示没有表态
func GetUserReaction(ctx context.Context, userId, videoId string) (*bool, error) {
	like, err := findLike(DB.WithContext(ctx), userId, videoId)
	if err != nil || like == nil {
		return nil, err
	}
	isLike := like.IsLike
	return &isLike, nil
}

// CountLikesByVideos 统计一批视频的点赞数 (不含点踩)
func CountLikesByVideos(ctx context.Context, videoIds []string) (map[string]int64, error) {
	return countByVideos(ctx, &model.Like{}, videoIds, "is_like = ?", true)
}

// CountTotalLikes 一批视频的点赞总数
func CountTotalLikes(ctx context.Context, videoIds []string) (int64, error) {
	var count int64
	if len(videoIds) == 0 {
		return 0, nil
	}
	err := DB.WithContext(ctx).Model(&model.Like{}).Where("video_id IN ? AND is_like = ?", videoIds, true).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountTotalLikes failed,err: %v", err)
	}
	return count, nil
}

func DeleteLikesByVideoWithTx(tx *gorm.DB, videoId string) error {
	if err := tx.Where("video_id = ?", videoId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLikesByVideo failed, videoId: %s", videoId)
	}
	return nil
}

type videoCount struct {
	VideoID string
	Total   int64
}

func countByVideos(ctx context.Context, table interface{}, videoIds []string, cond string, args ...interface{}) (map[string]int64, error) {
	res := make(map[string]int64, len(videoIds))
	if len(videoIds) == 0 {
		return res, nil
	}
	var rows []videoCount
	query := DB.WithContext(ctx).Model(table).Select("video_id, COUNT(*) AS total").Where("video_id IN ?", videoIds)
	if cond != "" {
		query = query.Where(cond, args...)
	}
	if err := query.Group("video_id").Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "count by videos failed,err: %v", err)
	}
	for _, r := range rows {
		res[r.VideoID] = r.Total
	}
	return res, nil
}

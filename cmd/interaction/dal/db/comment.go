package db

import (
	"context"

	"StikTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err: %v", err)
	}
	return nil
}

func GetComment(ctx context.Context, commentId string) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("id = ?", commentId).First(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "GetComment failed, commentId: %s", commentId)
	}
	return &comment, nil
}

// ListTopComments 一级评论 最新的在前
func ListTopComments(ctx context.Context, videoId string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := DB.WithContext(ctx).Where("video_id = ? AND parent_id IS NULL", videoId).Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListTopComments failed, videoId: %s", videoId)
	}
	return comments, nil
}

// ListReplies 一批一级评论的直接回复 最早的在前
func ListReplies(ctx context.Context, parentIds []string) ([]*model.Comment, error) {
	var comments []*model.Comment
	if len(parentIds) == 0 {
		return comments, nil
	}
	err := DB.WithContext(ctx).Where("parent_id IN ?", parentIds).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListReplies failed,err: %v", err)
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId string) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoCommentCount failed, videoId: %s", videoId)
	}
	return count, nil
}

func CountCommentsByVideos(ctx context.Context, videoIds []string) (map[string]int64, error) {
	return countByVideos(ctx, &model.Comment{}, videoIds, "")
}

// DeleteCommentWithReplies 同时删除它的回复
func DeleteCommentWithReplies(ctx context.Context, commentId string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "delete replies failed, commentId: %s", commentId)
		}
		if err := tx.Where("id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "DeleteComment failed, commentId: %s", commentId)
		}
		return nil
	})
}

func DeleteCommentsByVideoWithTx(tx *gorm.DB, videoId string) error {
	if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteCommentsByVideo failed, videoId: %s", videoId)
	}
	return nil
}

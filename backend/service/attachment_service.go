package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"bulletin-board/backend/common"
	"bulletin-board/backend/model"
)

// SaveEventImages stores the accepted files and records one EventImage
// row per file. Files are processed independently: a disallowed
// extension or a failed write skips that file and never fails the
// request or rolls back siblings.
func SaveEventImages(eventId int, files []*multipart.FileHeader) []*model.EventImage {
	var saved []*model.EventImage
	for _, file := range files {
		if !common.IsAllowedImageName(file.Filename) {
			common.SysLog(fmt.Sprintf("skipping upload %q for event %d: extension not allowed", file.Filename, eventId))
			continue
		}
		storedName := common.GenerateStoredName(file.Filename)
		diskPath := filepath.Join(common.UploadPath, storedName)
		if err := common.SaveMultipartFile(file, diskPath); err != nil {
			common.SysError(fmt.Sprintf("failed to store upload %q for event %d: %s", file.Filename, eventId, err.Error()))
			continue
		}
		image := &model.EventImage{
			EventId:      eventId,
			StoredName:   storedName,
			OriginalName: common.SanitizeFilename(file.Filename),
		}
		if err := model.CreateEventImage(image); err != nil {
			// No row means the file is orphaned; remove it again.
			_ = common.DeleteFile(diskPath)
			common.SysError(fmt.Sprintf("failed to record upload %q for event %d: %s", file.Filename, eventId, err.Error()))
			continue
		}
		saved = append(saved, image)
	}
	return saved
}

// DeleteEventImage removes one image: backing file first (a file that is
// already gone is fine), then the row.
func DeleteEventImage(eventId int, imageId int) error {
	image, err := model.GetEventImage(eventId, imageId)
	if err != nil {
		return err
	}
	diskPath := filepath.Join(common.UploadPath, image.StoredName)
	if err := common.DeleteFile(diskPath); err != nil {
		common.SysError(fmt.Sprintf("failed to delete file %s for image %d: %s", diskPath, imageId, err.Error()))
	}
	return model.DeleteEventImageById(imageId)
}

// DeleteEventWithImages cascades an event deletion. File removal is best
// effort: a failed unlink is logged and the deletion continues, the
// event row must always go away.
func DeleteEventWithImages(eventId int) error {
	images, err := model.GetEventImages(eventId)
	if err != nil {
		return err
	}
	for _, image := range images {
		diskPath := filepath.Join(common.UploadPath, image.StoredName)
		if err := common.DeleteFile(diskPath); err != nil {
			common.SysError(fmt.Sprintf("failed to delete file %s for event %d: %s", diskPath, eventId, err.Error()))
		}
	}
	return model.DeleteEventById(eventId)
}

// ImageURL resolves the public access path for a stored file.
func ImageURL(storedName string) string {
	return "/uploads/" + storedName
}

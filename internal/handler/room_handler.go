package handlers

import (
	"net/http"

	"hotelbooking/internal/models"
	"hotelbooking/internal/service"
)

func (h *Handlers) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.RoomService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, rooms, http.StatusOK)
}

func (h *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgRoomAbsent, http.StatusNotFound)
		return
	}

	room, err := h.RoomService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, room, http.StatusOK)
}

func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.Room
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.RoomService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, room, http.StatusCreated)
}

func (h *Handlers) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgRoomAbsent, http.StatusNotFound)
		return
	}

	var req models.Room
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.RoomService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, room, http.StatusOK)
}

func (h *Handlers) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, service.MsgRoomAbsent, http.StatusNotFound)
		return
	}

	if err := h.RoomService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, DeleteResponse{ID: id}, http.StatusOK)
}

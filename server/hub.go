package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kilngas/model"
)

// Hub 每个 WebSocket 连接一个，请求与响应分别由两个 goroutine 处理
type Hub struct {
	svc  *Service
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done chan struct{}
}

func NewHub(svc *Service) *Hub {
	return &Hub{
		svc:   svc,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) close() {
	close(h.done)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("write websocket reply failed")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// dispatch 按消息类型执行查询，出错时回复 error 类型消息
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	var (
		replyType string
		data      any
		err       error
	)
	switch msg.Type {
	case model.MsgSpecies:
		replyType, data = model.MsgSpeciesList, h.svc.SpeciesList()
	case model.MsgProperties:
		var q model.PropertyQuery
		if err = decodeContent(msg, &q); err == nil {
			replyType = model.MsgPropertiesResult
			data, err = h.svc.Properties(q)
		}
	case model.MsgSweep:
		var q model.SweepQuery
		if err = decodeContent(msg, &q); err == nil {
			replyType = model.MsgSweepResult
			data, err = h.svc.Sweep(q)
		}
	case model.MsgAdvect:
		var q model.AdvectQuery
		if err = decodeContent(msg, &q); err == nil {
			replyType = model.MsgAdvectResult
			data, err = h.svc.Advect(q)
		}
	default:
		err = errors.Wrapf(ErrBadRequest, "no such type %q", msg.Type)
	}
	if err != nil {
		log.WithFields(log.Fields{"type": msg.Type, "status": errorStatus(err)}).WithError(err).Info("websocket request failed")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}

	content, err := json.Marshal(data)
	if err != nil {
		log.WithError(err).Error("marshal websocket reply failed")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: replyType, Content: string(content)}
}

func decodeContent(msg model.Msg, v any) error {
	if err := json.Unmarshal([]byte(msg.Content), v); err != nil {
		return errors.Wrapf(ErrBadRequest, "invalid %s content: %v", msg.Type, err)
	}
	return nil
}
